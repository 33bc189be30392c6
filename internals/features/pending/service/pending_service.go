package service

import (
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"absenku_backend/internals/configs"
	"absenku_backend/internals/constants"
	assistantDTO "absenku_backend/internals/features/assistant/dto"
	pendingModel "absenku_backend/internals/features/pending/model"
)

// PendingService — satu-satunya pemilik transisi status pending action.
//
// Maksimal satu row pending & belum expired per contact_id: Create selalu
// membatalkan row lama lebih dulu (supersession eksplisit). Confirm/Cancel
// bersifat compare-and-swap: update hanya sukses kalau row masih pending di
// saat tulis, jadi duplicate delivery webhook tidak bisa mengeksekusi batch
// dua kali.
type PendingService struct {
	DB *gorm.DB

	// lock per contact untuk serialisasi read-modify-write dalam satu proses;
	// lintas proses ditangani CAS di storage.
	locks sync.Map // contactID → *sync.Mutex
}

func NewPendingService(db *gorm.DB) *PendingService {
	return &PendingService{DB: db}
}

// LockContact mengembalikan fungsi unlock; pakai di sekitar urutan
// lookup→confirm/cancel/create milik satu contact.
func (s *PendingService) LockContact(contactID string) func() {
	muAny, _ := s.locks.LoadOrStore(contactID, &sync.Mutex{})
	mu := muAny.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// Create menyimpan pending action baru untuk contact, membatalkan pending
// lama yang masih aktif kalau ada. Semuanya dalam satu transaksi.
func (s *PendingService) Create(contactID string, actions *assistantDTO.ActionSet, confirmationMessage string) (*pendingModel.PendingActionModel, error) {
	contactID = strings.TrimSpace(contactID)
	if contactID == "" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "contact_id wajib diisi")
	}
	if actions == nil || len(actions.Actions) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Action set kosong")
	}

	payload, err := sonic.Marshal(actions)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal serialisasi action set")
	}

	now := time.Now()
	m := pendingModel.PendingActionModel{
		PendingActionContactID: contactID,
		PendingActionPayload:   datatypes.JSON(payload),
		PendingActionMessage:   confirmationMessage,
		PendingActionStatus:    constants.PendingStatusPending,
		PendingActionExpiresAt: now.Add(configs.PendingActionTTL),
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		// supersession: batalkan pending lama yang masih aktif
		res := tx.Model(&pendingModel.PendingActionModel{}).
			Where(`
				pending_action_contact_id = ?
				AND pending_action_status = ?
				AND pending_action_expires_at > ?
			`, contactID, constants.PendingStatusPending, now).
			Update("pending_action_status", constants.PendingStatusCancelled)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membatalkan pending lama")
		}
		if res.RowsAffected > 0 {
			log.Printf("[PENDING] contact=%s: %d pending lama dibatalkan (superseded)", contactID, res.RowsAffected)
		}

		if err := tx.Create(&m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan pending action")
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return &m, nil
}

// LookupActive mengembalikan pending action aktif (status pending & belum
// expired) milik contact, atau nil. Row expired dibiarkan — tidak dihapus
// di jalur baca.
func (s *PendingService) LookupActive(contactID string) (*pendingModel.PendingActionModel, error) {
	var m pendingModel.PendingActionModel
	err := s.DB.Where(`
			pending_action_contact_id = ?
			AND pending_action_status = ?
			AND pending_action_expires_at > ?
		`, strings.TrimSpace(contactID), constants.PendingStatusPending, time.Now()).
		Order("pending_action_created_at DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pending action")
	}
	return &m, nil
}

// Confirm menandai row confirmed. CAS: hanya sukses kalau row masih pending;
// kalau sudah keburu confirmed/cancelled oleh delivery lain → 409.
func (s *PendingService) Confirm(id uuid.UUID) error {
	return s.transition(id, constants.PendingStatusConfirmed)
}

// Cancel menandai row cancelled (user jawab selain yes, atau supersession).
func (s *PendingService) Cancel(id uuid.UUID) error {
	return s.transition(id, constants.PendingStatusCancelled)
}

func (s *PendingService) transition(id uuid.UUID, to constants.PendingStatus) error {
	if id == uuid.Nil {
		return fiber.NewError(fiber.StatusBadRequest, "pending_action_id wajib diisi")
	}
	res := s.DB.Model(&pendingModel.PendingActionModel{}).
		Where("pending_action_id = ? AND pending_action_status = ?", id, constants.PendingStatusPending).
		Update("pending_action_status", to)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengubah status pending action")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusConflict, "Pending action sudah tidak pending lagi")
	}
	return nil
}

// DecodePayload membaca kembali ActionSet dari kolom JSON.
func DecodePayload(m *pendingModel.PendingActionModel) (*assistantDTO.ActionSet, error) {
	var set assistantDTO.ActionSet
	if err := sonic.Unmarshal(m.PendingActionPayload, &set); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Payload pending action korup")
	}
	return &set, nil
}
