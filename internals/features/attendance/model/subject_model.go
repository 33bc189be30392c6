package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectModel — mata kuliah yang bisa dipakai slot timetable.
type SubjectModel struct {
	SubjectID   uuid.UUID `gorm:"column:subject_id;type:uuid;primaryKey" json:"subject_id"`
	SubjectCode string    `gorm:"column:subject_code;uniqueIndex;not null" json:"subject_code"` // kode pendek, mis. "DC"
	SubjectName string    `gorm:"column:subject_name;uniqueIndex;not null" json:"subject_name"`

	SubjectCreatedAt time.Time `gorm:"column:subject_created_at;autoCreateTime" json:"subject_created_at"`

	// hapus subject → slot & stats ikut terhapus
	Slots []TimetableSlotModel   `gorm:"foreignKey:TimetableSlotSubjectCode;references:SubjectCode;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Stats []AttendanceStatsModel `gorm:"foreignKey:AttendanceStatsSubjectCode;references:SubjectCode;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubjectID == uuid.Nil {
		m.SubjectID = uuid.New()
	}
	return nil
}
