package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"absenku_backend/internals/constants"
)

// PendingActionModel — action set hasil parsing LLM yang menunggu konfirmasi.
//
// Flow: pesan masuk → LLM parse → row pending → user balas yes/no → status
// jadi confirmed/cancelled. Expired (5 menit) cuma soft: row tetap ada tapi
// tidak pernah dikembalikan LookupActive; scheduler yang bersihkan.
type PendingActionModel struct {
	PendingActionID        uuid.UUID               `gorm:"column:pending_action_id;type:uuid;primaryKey" json:"pending_action_id"`
	PendingActionContactID string                  `gorm:"column:pending_action_contact_id;not null;index:idx_pending_actions_contact_status_expires,priority:1" json:"pending_action_contact_id"`
	PendingActionPayload   datatypes.JSON          `gorm:"column:pending_action_payload;not null" json:"pending_action_payload"` // serialized ActionSet
	PendingActionMessage   string                  `gorm:"column:pending_action_confirmation_message;not null" json:"pending_action_confirmation_message"`
	PendingActionStatus    constants.PendingStatus `gorm:"column:pending_action_status;not null;default:'pending';index:idx_pending_actions_contact_status_expires,priority:2" json:"pending_action_status"`

	PendingActionCreatedAt time.Time `gorm:"column:pending_action_created_at;autoCreateTime;index" json:"pending_action_created_at"`
	PendingActionExpiresAt time.Time `gorm:"column:pending_action_expires_at;not null;index:idx_pending_actions_contact_status_expires,priority:3" json:"pending_action_expires_at"`
}

func (PendingActionModel) TableName() string { return "pending_actions" }

func (m *PendingActionModel) BeforeCreate(tx *gorm.DB) error {
	if m.PendingActionID == uuid.Nil {
		m.PendingActionID = uuid.New()
	}
	return nil
}
