package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"absenku_backend/internals/constants"
	assistantDTO "absenku_backend/internals/features/assistant/dto"
	pendingModel "absenku_backend/internals/features/pending/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&pendingModel.PendingActionModel{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM pending_actions")
	})
	return db
}

func sampleActions() *assistantDTO.ActionSet {
	return &assistantDTO.ActionSet{
		Actions: []assistantDTO.Action{
			{
				Intent: constants.IntentMarkAttendance,
				Method: "POST",
				Params: assistantDTO.ActionParams{
					SubjectCode: "CS101",
					Status:      "present",
					DateOfSlot:  "2026-08-31",
				},
			},
		},
		ConfirmationMessage: "Mark CS101 as present today?",
	}
}

func TestCreateAndLookupActive(t *testing.T) {
	svc := NewPendingService(newTestDB(t))

	created, err := svc.Create("12345", sampleActions(), "Mark CS101 as present today?")
	require.NoError(t, err)
	assert.Equal(t, constants.PendingStatusPending, created.PendingActionStatus)
	assert.True(t, created.PendingActionExpiresAt.After(time.Now()))

	got, err := svc.LookupActive("12345")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.PendingActionID, got.PendingActionID)

	set, err := DecodePayload(got)
	require.NoError(t, err)
	require.Len(t, set.Actions, 1)
	assert.Equal(t, constants.IntentMarkAttendance, set.Actions[0].Intent)
	assert.Equal(t, "CS101", set.Actions[0].Params.SubjectCode)
}

func TestCreateSupersedesExistingPending(t *testing.T) {
	svc := NewPendingService(newTestDB(t))

	first, err := svc.Create("12345", sampleActions(), "first")
	require.NoError(t, err)
	second, err := svc.Create("12345", sampleActions(), "second")
	require.NoError(t, err)

	var old pendingModel.PendingActionModel
	require.NoError(t, svc.DB.First(&old, "pending_action_id = ?", first.PendingActionID).Error)
	assert.Equal(t, constants.PendingStatusCancelled, old.PendingActionStatus)

	got, err := svc.LookupActive("12345")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, second.PendingActionID, got.PendingActionID)
}

func TestLookupActiveSkipsExpired(t *testing.T) {
	svc := NewPendingService(newTestDB(t))

	created, err := svc.Create("55555", sampleActions(), "expired soon")
	require.NoError(t, err)

	// mundurkan expires_at ke masa lalu
	require.NoError(t, svc.DB.Model(&pendingModel.PendingActionModel{}).
		Where("pending_action_id = ?", created.PendingActionID).
		Update("pending_action_expires_at", time.Now().Add(-time.Minute)).Error)

	got, err := svc.LookupActive("55555")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestConfirmIsCompareAndSwap(t *testing.T) {
	svc := NewPendingService(newTestDB(t))

	created, err := svc.Create("77777", sampleActions(), "confirm me")
	require.NoError(t, err)

	require.NoError(t, svc.Confirm(created.PendingActionID))

	// delivery kedua untuk row yang sama → conflict
	err = svc.Confirm(created.PendingActionID)
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)

	// cancel setelah confirmed juga conflict
	err = svc.Cancel(created.PendingActionID)
	require.Error(t, err)
}

func TestCancel(t *testing.T) {
	svc := NewPendingService(newTestDB(t))

	created, err := svc.Create("88888", sampleActions(), "cancel me")
	require.NoError(t, err)
	require.NoError(t, svc.Cancel(created.PendingActionID))

	got, err := svc.LookupActive("88888")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateValidation(t *testing.T) {
	svc := NewPendingService(newTestDB(t))

	_, err := svc.Create("", sampleActions(), "x")
	require.Error(t, err)

	_, err = svc.Create("12345", &assistantDTO.ActionSet{}, "x")
	require.Error(t, err)
}

func TestLockContactSerializes(t *testing.T) {
	svc := NewPendingService(newTestDB(t))

	unlock := svc.LockContact("99999")
	done := make(chan struct{})
	go func() {
		u := svc.LockContact("99999")
		u()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("lock kedua tidak boleh dapat sebelum unlock pertama")
	case <-time.After(50 * time.Millisecond):
	}
	unlock()
	<-done
}
