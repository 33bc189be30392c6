package dto

import (
	"strings"

	"absenku_backend/internals/constants"
)

/* ===============================
   Action set hasil parsing LLM
   (payload pending action)
=================================*/

// UpdatedSlot — field yang boleh berubah saat update slot.
type UpdatedSlot struct {
	Day         *constants.Day       `json:"day,omitempty"`
	StartTime   *string              `json:"start_time,omitempty"`
	EndTime     *string              `json:"end_time,omitempty"`
	SubjectCode *string              `json:"subject_code,omitempty"`
	ClassType   *constants.ClassType `json:"class_type,omitempty"`
}

// ActionParams — parameter satu action. Semua optional di wire format;
// validasi per-intent terjadi di engine/dispatcher.
type ActionParams struct {
	SubjectCode string                     `json:"subject_code,omitempty"`
	SubjectName string                     `json:"subject_name,omitempty"`
	DayOfSlot   constants.Day              `json:"day_of_slot,omitempty"`
	DateOfSlot  string                     `json:"date_of_slot,omitempty"` // YYYY-MM-DD
	StartTime   string                     `json:"start_time,omitempty"`
	EndTime     string                     `json:"end_time,omitempty"`
	ClassType   constants.ClassType        `json:"class_type,omitempty"`
	Status      constants.AttendanceStatus `json:"status,omitempty"`
	UpdatedSlot *UpdatedSlot               `json:"updated_slot,omitempty"`

	// ConfusionFlag true kalau LLM tidak yakin dengan instruksinya.
	ConfusionFlag bool `json:"confusion_flag,omitempty"`
}

// Action — satu intent + verb HTTP + parameter.
type Action struct {
	Intent constants.Intent `json:"intent"`
	Method string           `json:"http_method,omitempty"`
	Params ActionParams     `json:"params"`
}

// ActionSet — seluruh hasil parsing satu pesan user; dikonfirmasi atau
// dibatalkan sebagai satu unit.
type ActionSet struct {
	Actions             []Action `json:"actions"`
	ConfirmationMessage string   `json:"confirmation_message"`
}

// Validate memeriksa bentuk minimum action set (schema-valid, bukan
// validasi bisnis).
func (s *ActionSet) Validate() bool {
	if s == nil || strings.TrimSpace(s.ConfirmationMessage) == "" {
		return false
	}
	if len(s.Actions) == 0 {
		return false
	}
	return true
}
