package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel — mahasiswa terdaftar. Identitas eksternal = contact_id Telegram.
type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	UserUID      string    `gorm:"column:user_uid;uniqueIndex;not null" json:"user_uid"`    // NIM / roll number
	UserName     string    `gorm:"column:user_name;not null" json:"user_name"`
	UserDivision string    `gorm:"column:user_division;not null" json:"user_division"`      // divisi, mis. "A"
	UserYear     int       `gorm:"column:user_year;not null" json:"user_year"`              // tahun akademik 1-4
	UserBatch    string    `gorm:"column:user_batch;not null" json:"user_batch"`            // batch lab, mis. "B1"
	UserBranch   string    `gorm:"column:user_branch;not null;default:'COMPS'" json:"user_branch"`
	UserContact  string    `gorm:"column:user_contact_id;uniqueIndex;not null" json:"user_contact_id"` // Telegram user ID (string)
	UserIsAdmin  bool      `gorm:"column:user_is_admin;not null;default:false" json:"user_is_admin"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
