package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"absenku_backend/internals/constants"
)

// AttendanceLogModel — satu catatan kehadiran (slot + tanggal + status).
// Maksimal satu log per (slot, tanggal); koreksi status = delete + create
// baru di dalam transaksi ResolveAndMark.
type AttendanceLogModel struct {
	AttendanceLogID     uuid.UUID                  `gorm:"column:attendance_log_id;type:uuid;primaryKey" json:"attendance_log_id"`
	AttendanceLogSlotID uuid.UUID                  `gorm:"column:attendance_log_slot_id;type:uuid;not null;index" json:"attendance_log_slot_id"`
	AttendanceLogStatus constants.AttendanceStatus `gorm:"column:attendance_log_status;not null;index" json:"attendance_log_status"`
	AttendanceLogDate   time.Time                  `gorm:"column:attendance_log_date;type:date;not null;index" json:"attendance_log_date"`
}

func (AttendanceLogModel) TableName() string { return "attendance_logs" }

func (m *AttendanceLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceLogID == uuid.Nil {
		m.AttendanceLogID = uuid.New()
	}
	return nil
}
