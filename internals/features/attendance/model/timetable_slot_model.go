package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"absenku_backend/internals/constants"
)

// TimetableSlotModel — satu slot timetable milik user pada hari tertentu.
//
// Uniqueness: satu user tidak boleh punya dua slot dengan day + start + end
// yang sama. is_temporary=true artinya slot dibuat otomatis saat user absen
// untuk kelas yang tidak ada di timetable reguler; slot temporary tidak pernah
// dihapus otomatis (jadi jejak historis).
type TimetableSlotModel struct {
	TimetableSlotID     uuid.UUID     `gorm:"column:timetable_slot_id;type:uuid;primaryKey" json:"timetable_slot_id"`
	TimetableSlotUserID uuid.UUID     `gorm:"column:timetable_slot_user_id;type:uuid;not null;uniqueIndex:uq_timetable_slots_user_day_time,priority:1" json:"timetable_slot_user_id"`
	TimetableSlotDay    constants.Day `gorm:"column:timetable_slot_day;not null;index;uniqueIndex:uq_timetable_slots_user_day_time,priority:2" json:"timetable_slot_day"`

	// jam disimpan "HH:MM" (kolom time, lihat helpers/dbtime)
	TimetableSlotStartTime string `gorm:"column:timetable_slot_start_time;type:time;not null;uniqueIndex:uq_timetable_slots_user_day_time,priority:3" json:"timetable_slot_start_time"`
	TimetableSlotEndTime   string `gorm:"column:timetable_slot_end_time;type:time;not null;uniqueIndex:uq_timetable_slots_user_day_time,priority:4" json:"timetable_slot_end_time"`

	TimetableSlotClassType   constants.ClassType `gorm:"column:timetable_slot_class_type;not null" json:"timetable_slot_class_type"`
	TimetableSlotSubjectCode string              `gorm:"column:timetable_slot_subject_code;not null;index" json:"timetable_slot_subject_code"`

	TimetableSlotIsTemporary bool       `gorm:"column:timetable_slot_is_temporary;not null;default:false" json:"timetable_slot_is_temporary"`
	TimetableSlotDateOfSlot  *time.Time `gorm:"column:timetable_slot_date_of_slot;type:date" json:"timetable_slot_date_of_slot,omitempty"` // diisi untuk slot temporary

	TimetableSlotCreatedAt time.Time `gorm:"column:timetable_slot_created_at;autoCreateTime" json:"timetable_slot_created_at"`

	// hapus slot → log ikut terhapus
	Logs []AttendanceLogModel `gorm:"foreignKey:AttendanceLogSlotID;references:TimetableSlotID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (TimetableSlotModel) TableName() string { return "timetable_slots" }

func (m *TimetableSlotModel) BeforeCreate(tx *gorm.DB) error {
	if m.TimetableSlotID == uuid.Nil {
		m.TimetableSlotID = uuid.New()
	}
	return nil
}
