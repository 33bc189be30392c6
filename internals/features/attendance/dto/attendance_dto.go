package dto

import (
	"time"

	"absenku_backend/internals/constants"
	attendanceModel "absenku_backend/internals/features/attendance/model"
)

// ===== Request =====

type CreateSubjectRequest struct {
	SubjectCode string `json:"subject_code" validate:"required,min=1,max=20"`
	SubjectName string `json:"subject_name" validate:"required,min=2,max=100"`
}

type SlotKeyRequest struct {
	ContactID   string `json:"contact_id" validate:"required"`
	Day         string `json:"day_of_slot" validate:"required"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	SubjectCode string `json:"subject_code" validate:"required"`
	ClassType   string `json:"class_type" validate:"required"`
}

type MarkAttendanceRequest struct {
	SlotKeyRequest
	Status     string `json:"status" validate:"required,oneof=present absent cancelled"`
	DateOfSlot string `json:"date_of_slot" validate:"required"` // YYYY-MM-DD
}

// UpdateSlotRequest — key lama + field baru yang mau diubah (semua opsional).
type UpdateSlotRequest struct {
	SlotKeyRequest
	Updated struct {
		Day         *string `json:"day_of_slot"`
		StartTime   *string `json:"start_time"`
		EndTime     *string `json:"end_time"`
		SubjectCode *string `json:"subject_code"`
		ClassType   *string `json:"class_type"`
	} `json:"updated_slot" validate:"required"`
}

type DeleteSubjectRequest struct {
	ContactID   string `json:"contact_id" validate:"required"`
	SubjectCode string `json:"subject_code" validate:"required"`
}

// ===== Response =====

type SubjectResponse struct {
	SubjectCode string `json:"subject_code"`
	SubjectName string `json:"subject_name"`
}

func ToSubjectResponse(m *attendanceModel.SubjectModel) SubjectResponse {
	return SubjectResponse{SubjectCode: m.SubjectCode, SubjectName: m.SubjectName}
}

type SlotResponse struct {
	Day         constants.Day       `json:"day_of_slot"`
	StartTime   string              `json:"start_time"`
	EndTime     string              `json:"end_time"`
	SubjectCode string              `json:"subject_code"`
	ClassType   constants.ClassType `json:"class_type"`
	IsTemporary bool                `json:"is_temporary"`
	DateOfSlot  *string             `json:"date_of_slot,omitempty"`
}

func ToSlotResponse(m *attendanceModel.TimetableSlotModel) SlotResponse {
	out := SlotResponse{
		Day:         m.TimetableSlotDay,
		StartTime:   m.TimetableSlotStartTime,
		EndTime:     m.TimetableSlotEndTime,
		SubjectCode: m.TimetableSlotSubjectCode,
		ClassType:   m.TimetableSlotClassType,
		IsTemporary: m.TimetableSlotIsTemporary,
	}
	if m.TimetableSlotDateOfSlot != nil {
		d := m.TimetableSlotDateOfSlot.Format("2006-01-02")
		out.DateOfSlot = &d
	}
	return out
}

func ToSlotResponses(ms []attendanceModel.TimetableSlotModel) []SlotResponse {
	out := make([]SlotResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToSlotResponse(&ms[i]))
	}
	return out
}

type StatsResponse struct {
	SubjectCode     string              `json:"subject_code"`
	ClassType       constants.ClassType `json:"class_type"`
	TotalClasses    int                 `json:"total_classes"`
	AttendedClasses int                 `json:"attended_classes"`
	Percentage      float64             `json:"percentage"`
}

func ToStatsResponse(m *attendanceModel.AttendanceStatsModel) StatsResponse {
	out := StatsResponse{
		SubjectCode:     m.AttendanceStatsSubjectCode,
		ClassType:       m.AttendanceStatsClassType,
		TotalClasses:    m.AttendanceStatsTotalClasses,
		AttendedClasses: m.AttendanceStatsAttendedClasses,
	}
	if m.AttendanceStatsTotalClasses > 0 {
		out.Percentage = float64(m.AttendanceStatsAttendedClasses) / float64(m.AttendanceStatsTotalClasses) * 100
	}
	return out
}

func ToStatsResponses(ms []attendanceModel.AttendanceStatsModel) []StatsResponse {
	out := make([]StatsResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToStatsResponse(&ms[i]))
	}
	return out
}

type AttendanceLogResponse struct {
	Slot   SlotResponse               `json:"slot"`
	Status constants.AttendanceStatus `json:"status"`
	Date   string                     `json:"date"`
}

func ToAttendanceLogResponse(slot *attendanceModel.TimetableSlotModel, log *attendanceModel.AttendanceLogModel) AttendanceLogResponse {
	return AttendanceLogResponse{
		Slot:   ToSlotResponse(slot),
		Status: log.AttendanceLogStatus,
		Date:   log.AttendanceLogDate.Format("2006-01-02"),
	}
}

type MarkAttendanceResponse struct {
	Status      constants.AttendanceStatus `json:"status"`
	Date        string                     `json:"date"`
	TempCreated bool                       `json:"temporary_slot_created"`
}

func ToMarkAttendanceResponse(log *attendanceModel.AttendanceLogModel, tempCreated bool) MarkAttendanceResponse {
	return MarkAttendanceResponse{
		Status:      log.AttendanceLogStatus,
		Date:        log.AttendanceLogDate.Format("2006-01-02"),
		TempCreated: tempCreated,
	}
}

// helper kecil untuk format tanggal response
func FormatDate(t time.Time) string { return t.Format("2006-01-02") }
