package service

import (
	"context"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	attendanceService "absenku_backend/internals/features/attendance/service"
	pendingService "absenku_backend/internals/features/pending/service"
)

// fakeLLM mengembalikan jawaban kalengan dan merekam prompt terakhir.
type fakeLLM struct {
	response   string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeLLM) Complete(_ context.Context, systemPrompt, userMessage string) (string, error) {
	f.lastSystem = systemPrompt
	f.lastUser = userMessage
	return f.response, f.err
}

const validLLMResponse = `{
	"actions": [{
		"intent": "mark_attendance",
		"http_method": "POST",
		"params": {"subject_code": "DC", "class_type": "lecture", "status": "present", "day_of_slot": "Wed", "start_time": "09:00", "end_time": "10:00"}
	}],
	"confirmation_message": "Mark DC lecture on Wednesday (09:00-10:00) as attended. Confirm?"
}`

func TestHandleMessageStoresPendingAction(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db)
	fake := &fakeLLM{response: validLLMResponse}
	svc := NewIntakeService(db, fake)

	msg, err := svc.HandleMessage(context.Background(), "424242", "mark DC lecture attended tomorrow")
	require.NoError(t, err)
	assert.Contains(t, msg, "Confirm?")
	assert.Equal(t, "mark DC lecture attended tomorrow", fake.lastUser)

	pending, err := pendingService.NewPendingService(db).LookupActive("424242")
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, msg, pending.PendingActionMessage)
}

func TestHandleMessagePromptCarriesTimetableAndDates(t *testing.T) {
	db := newTestDB(t)
	u := seedUser(t, db)
	att := attendanceService.NewAttendanceService(db)
	_, err := att.CreateSubject("DC", "Distributed Computing")
	require.NoError(t, err)
	_, err = att.AddSlot(u.UserID, "Wed", "09:00", "10:00", "DC", "lecture")
	require.NoError(t, err)

	fake := &fakeLLM{response: validLLMResponse}
	svc := NewIntakeService(db, fake)

	_, err = svc.HandleMessage(context.Background(), "424242", "what's tomorrow's timetable")
	require.NoError(t, err)
	assert.Contains(t, fake.lastSystem, "Wed: 09:00-10:00 DC (lecture)")
	assert.Contains(t, fake.lastSystem, "'tomorrow'")
}

func TestHandleMessageUnknownUser(t *testing.T) {
	svc := NewIntakeService(newTestDB(t), &fakeLLM{response: validLLMResponse})

	_, err := svc.HandleMessage(context.Background(), "ghost", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register first")
}

func TestHandleMessageLLMFailure(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db)

	svc := NewIntakeService(db, &fakeLLM{err: assert.AnError})
	_, err := svc.HandleMessage(context.Background(), "424242", "mark DC attended")
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadGateway, fe.Code)
}

func TestHandleMessageInvalidLLMOutput(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db)

	for _, bad := range []string{"not json", `{"actions":[],"confirmation_message":"x"}`, `{"actions":[{"intent":"mark_attendance","params":{}}]}`} {
		svc := NewIntakeService(db, &fakeLLM{response: bad})
		_, err := svc.HandleMessage(context.Background(), "424242", "do something")
		require.Error(t, err, "output: %s", bad)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusBadGateway, fe.Code)
	}
}

func TestHandleMessageEmpty(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db)
	svc := NewIntakeService(db, &fakeLLM{response: validLLMResponse})

	_, err := svc.HandleMessage(context.Background(), "424242", "   ")
	require.Error(t, err)
	assert.False(t, strings.Contains(err.Error(), "register"))
}
