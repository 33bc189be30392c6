package service

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absenku_backend/internals/configs"
	assistantService "absenku_backend/internals/features/assistant/service"
	pendingService "absenku_backend/internals/features/pending/service"
	userService "absenku_backend/internals/features/users/service"
)

// ConversationService — state machine percakapan per contact.
//
// Kalau contact punya pending action aktif, pesan berikutnya dianggap
// jawaban konfirmasi (yes/y → eksekusi, lainnya → batal). Kalau tidak ada,
// pesan masuk pipeline LLM dan jadi pending action baru.
type ConversationService struct {
	Sender     Sender
	Users      *userService.UserService
	Pending    *pendingService.PendingService
	Intake     *assistantService.IntakeService
	Dispatcher *assistantService.Dispatcher
}

func NewConversationService(db *gorm.DB, sender Sender, intake *assistantService.IntakeService) *ConversationService {
	return &ConversationService{
		Sender:     sender,
		Users:      userService.NewUserService(db),
		Pending:    pendingService.NewPendingService(db),
		Intake:     intake,
		Dispatcher: assistantService.NewDispatcher(db),
	}
}

// ProcessMessage menangani satu pesan masuk. Error pengiriman balasan cuma
// di-log; Telegram tetap dapat 200 supaya update tidak dikirim ulang terus.
func (s *ConversationService) ProcessMessage(ctx context.Context, chatID int64, contactID, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	if configs.IsBotDisabled() {
		s.reply(chatID, "Sorry, bot is temporarily down.")
		return
	}

	// serialize per contact: dua update beruntun tidak boleh interleave
	unlock := s.Pending.LockContact(contactID)
	defer unlock()

	user, err := s.Users.ByContact(contactID)
	if err != nil {
		s.reply(chatID, "Sorry, I couldn't find you. Please register first.")
		return
	}
	log.Printf("[TELEGRAM] Pesan dari %s (%s): %s", user.UserName, contactID, text)

	pending, err := s.Pending.LookupActive(contactID)
	if err != nil {
		s.reply(chatID, "Sorry, there was an error processing your request.")
		return
	}

	if pending != nil {
		answer := strings.ToLower(strings.TrimSpace(text))
		if answer == "yes" || answer == "y" {
			if err := s.Pending.Confirm(pending.PendingActionID); err != nil {
				// CAS kalah: update duplikat sudah mengeksekusi batch ini
				s.reply(chatID, "That action was already handled.")
				return
			}
			set, err := pendingService.DecodePayload(pending)
			if err != nil {
				s.reply(chatID, "Sorry, there was an error performing the action.")
				return
			}
			result, err := s.Dispatcher.Perform(contactID, set)
			if err != nil {
				log.Printf("[TELEGRAM] contact=%s: dispatch gagal: %v", contactID, err)
				s.reply(chatID, "Sorry, there was an error performing the action.")
				return
			}
			s.reply(chatID, result)
			return
		}
		// jawaban apa pun selain yes/y membatalkan
		if err := s.Pending.Cancel(pending.PendingActionID); err != nil {
			log.Printf("[TELEGRAM] contact=%s: cancel gagal: %v", contactID, err)
		}
		s.reply(chatID, "Action cancelled.")
		return
	}

	confirmation, err := s.Intake.HandleMessage(ctx, contactID, text)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			s.reply(chatID, fe.Message)
		} else {
			s.reply(chatID, "There was an error processing your request.")
		}
		return
	}
	s.reply(chatID, confirmation)
}

func (s *ConversationService) reply(chatID int64, text string) {
	if err := s.Sender.Send(chatID, text); err != nil {
		log.Printf("[TELEGRAM] gagal kirim balasan: %v", err)
	}
}
