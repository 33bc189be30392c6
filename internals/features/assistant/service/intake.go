package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absenku_backend/internals/constants"
	"absenku_backend/internals/features/assistant/dates"
	"absenku_backend/internals/features/assistant/dto"
	"absenku_backend/internals/features/assistant/llm"
	attendanceService "absenku_backend/internals/features/attendance/service"
	pendingService "absenku_backend/internals/features/pending/service"
	userService "absenku_backend/internals/features/users/service"
)

// IntakeService — pintu masuk pesan natural language.
//
// Alur: cek user → ekstrak referensi tanggal → ambil timetable mingguan
// sebagai konteks → panggil LLM → simpan hasilnya sebagai pending action →
// kembalikan confirmation message untuk dikirim balik ke user.
type IntakeService struct {
	Users      *userService.UserService
	Attendance *attendanceService.AttendanceService
	Pending    *pendingService.PendingService
	LLM        llm.Client
}

func NewIntakeService(db *gorm.DB, client llm.Client) *IntakeService {
	return &IntakeService{
		Users:      userService.NewUserService(db),
		Attendance: attendanceService.NewAttendanceService(db),
		Pending:    pendingService.NewPendingService(db),
		LLM:        client,
	}
}

// HandleMessage mem-parse pesan user jadi action set dan menyimpannya sebagai
// pending action. Return-nya confirmation message yang harus dijawab yes/no.
func (s *IntakeService) HandleMessage(ctx context.Context, contactID, userMessage string) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "Pesan kosong")
	}

	user, err := s.Users.ByContact(contactID)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "User not found. Please register first.")
	}

	now := time.Now()
	extracted := dates.Extract(userMessage, now)

	var refLines []string
	for _, e := range extracted {
		refLines = append(refLines, fmt.Sprintf("- '%s' -> %s (%s)",
			e.Text, e.Time.Format("2006-01-02"), e.Time.Format("Mon")))
	}

	// timetable mingguan jadi konteks resolusi jam slot
	var ttLines []string
	for _, day := range constants.AllDays {
		slots, err := s.Attendance.DailyTimetable(user.UserID, day)
		if err != nil {
			continue // hari kosong
		}
		for _, slot := range slots {
			ttLines = append(ttLines, fmt.Sprintf("%s: %s-%s %s (%s)",
				day, slot.TimetableSlotStartTime, slot.TimetableSlotEndTime,
				slot.TimetableSlotSubjectCode, slot.TimetableSlotClassType))
		}
	}

	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\nThe user's timetable is as follows:\n")
	sb.WriteString(strings.Join(ttLines, "\n"))
	sb.WriteString("\n\nThe user's message has been analyzed for date references. Extracted references:\n")
	sb.WriteString(strings.Join(refLines, "\n"))
	if len(refLines) == 0 {
		sb.WriteString("(none)")
	}
	sb.WriteString(fmt.Sprintf("\n\nToday is %s (%s). Use these parsed values to fill date_of_slot and day_of_slot; populate BOTH fields when the date exists.",
		now.Format("2006-01-02"), now.Format("Mon")))

	raw, err := s.LLM.Complete(ctx, sb.String(), userMessage)
	if err != nil {
		log.Printf("[INTAKE] contact=%s: LLM gagal: %v", contactID, err)
		return "", fiber.NewError(fiber.StatusBadGateway, "Asisten sedang tidak bisa dihubungi, coba lagi sebentar")
	}

	var set dto.ActionSet
	if err := sonic.Unmarshal([]byte(raw), &set); err != nil || !set.Validate() {
		log.Printf("[INTAKE] contact=%s: output LLM tidak valid: %v", contactID, err)
		return "", fiber.NewError(fiber.StatusBadGateway, "Asisten memberi jawaban tidak valid, coba lagi")
	}

	if _, err := s.Pending.Create(contactID, &set, set.ConfirmationMessage); err != nil {
		return "", err
	}
	return set.ConfirmationMessage, nil
}
