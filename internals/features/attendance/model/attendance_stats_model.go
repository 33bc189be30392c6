package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"absenku_backend/internals/constants"
)

// AttendanceStatsModel — counter kumulatif per user + subject + class type.
// Diupdate inkremental oleh ResolveAndMark, tidak pernah dihitung ulang bulk.
// Invariant: attended <= total; cancelled tidak pernah menyentuh keduanya.
type AttendanceStatsModel struct {
	AttendanceStatsID          uuid.UUID           `gorm:"column:attendance_stats_id;type:uuid;primaryKey" json:"attendance_stats_id"`
	AttendanceStatsUserID      uuid.UUID           `gorm:"column:attendance_stats_user_id;type:uuid;not null;uniqueIndex:uq_attendance_stats_user_subject_type,priority:1" json:"attendance_stats_user_id"`
	AttendanceStatsSubjectCode string              `gorm:"column:attendance_stats_subject_code;not null;uniqueIndex:uq_attendance_stats_user_subject_type,priority:2" json:"attendance_stats_subject_code"`
	AttendanceStatsClassType   constants.ClassType `gorm:"column:attendance_stats_class_type;not null;uniqueIndex:uq_attendance_stats_user_subject_type,priority:3" json:"attendance_stats_class_type"`

	AttendanceStatsTotalClasses    int `gorm:"column:attendance_stats_total_classes;not null;default:0" json:"attendance_stats_total_classes"`
	AttendanceStatsAttendedClasses int `gorm:"column:attendance_stats_attended_classes;not null;default:0" json:"attendance_stats_attended_classes"`
}

func (AttendanceStatsModel) TableName() string { return "attendance_stats" }

func (m *AttendanceStatsModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceStatsID == uuid.Nil {
		m.AttendanceStatsID = uuid.New()
	}
	return nil
}
