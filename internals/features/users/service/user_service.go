package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userModel "absenku_backend/internals/features/users/model"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Create mendaftarkan user baru. UID dan contact_id harus unik; duplikat
// salah satunya → 400 (bukan 409, supaya pesan error onboarding seragam).
func (s *UserService) Create(m *userModel.UserModel) error {
	m.UserUID = strings.TrimSpace(m.UserUID)
	m.UserContact = strings.TrimSpace(m.UserContact)

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_uid = ? OR user_contact_id = ?", m.UserUID, m.UserContact).
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek user")
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "User dengan UID atau contact itu sudah terdaftar")
		}
		if err := tx.Create(m).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan user")
		}
		return nil
	})
}

// ByContact mengambil user dari Telegram user ID; 404 berarti belum onboard.
func (s *UserService) ByContact(contactID string) (*userModel.UserModel, error) {
	var m userModel.UserModel
	err := s.DB.Where("user_contact_id = ?", strings.TrimSpace(contactID)).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan untuk contact tersebut")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return &m, nil
}
