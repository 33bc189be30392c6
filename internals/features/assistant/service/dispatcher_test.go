package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"absenku_backend/internals/constants"
	"absenku_backend/internals/features/assistant/dto"
	attendanceModel "absenku_backend/internals/features/attendance/model"
	attendanceService "absenku_backend/internals/features/attendance/service"
	pendingModel "absenku_backend/internals/features/pending/model"
	userModel "absenku_backend/internals/features/users/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&attendanceModel.SubjectModel{},
		&attendanceModel.TimetableSlotModel{},
		&attendanceModel.AttendanceLogModel{},
		&attendanceModel.AttendanceStatsModel{},
		&pendingModel.PendingActionModel{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserUID:      uuid.NewString(),
		UserName:     "Sari",
		UserDivision: "B",
		UserYear:     3,
		UserBatch:    "B2",
		UserBranch:   "COMPS",
		UserContact:  "424242",
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func TestPerformUnknownUser(t *testing.T) {
	d := NewDispatcher(newTestDB(t))
	_, err := d.Perform("nope", &dto.ActionSet{
		Actions:             []dto.Action{{Intent: constants.IntentCreateSubject}},
		ConfirmationMessage: "x",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "register first")
}

func TestPerformCreateSubjectThenAddSlot(t *testing.T) {
	db := newTestDB(t)
	d := NewDispatcher(db)
	seedUser(t, db)

	out, err := d.Perform("424242", &dto.ActionSet{
		Actions: []dto.Action{
			{
				Intent: constants.IntentCreateSubject,
				Params: dto.ActionParams{SubjectCode: "DC", SubjectName: "Distributed Computing"},
			},
			{
				Intent: constants.IntentAddSlot,
				Params: dto.ActionParams{
					SubjectCode: "DC",
					DayOfSlot:   constants.DayWed,
					StartTime:   "09:00",
					EndTime:     "10:00",
					ClassType:   constants.ClassLecture,
				},
			},
		},
		ConfirmationMessage: "ok",
	})
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Subject created successfully")
	assert.Contains(t, lines[1], "Slot added successfully")
}

func TestPerformMarkAttendanceDefaultsToToday(t *testing.T) {
	db := newTestDB(t)
	d := NewDispatcher(db)
	seedUser(t, db)
	_, err := attendanceService.NewAttendanceService(db).CreateSubject("DC", "Distributed Computing")
	require.NoError(t, err)

	now := time.Now()
	out, err := d.Perform("424242", &dto.ActionSet{
		Actions: []dto.Action{{
			Intent: constants.IntentMarkAttendance,
			Params: dto.ActionParams{
				SubjectCode: "DC",
				StartTime:   "09:00",
				EndTime:     "10:00",
				ClassType:   constants.ClassLecture,
				Status:      constants.StatusPresent,
				// DateOfSlot dan DayOfSlot sengaja kosong
			},
		}},
		ConfirmationMessage: "ok",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Attendance marked as present")
	assert.Contains(t, out, now.Format("2006-01-02"))
	assert.Contains(t, out, "temporary slot created")

	// day di-backfill dari tanggal hari ini
	var slot attendanceModel.TimetableSlotModel
	require.NoError(t, db.First(&slot).Error)
	assert.Equal(t, constants.Day(now.Format("Mon")), slot.TimetableSlotDay)
}

func TestPerformDayBackfilledFromDate(t *testing.T) {
	db := newTestDB(t)
	d := NewDispatcher(db)
	seedUser(t, db)
	_, err := attendanceService.NewAttendanceService(db).CreateSubject("DC", "Distributed Computing")
	require.NoError(t, err)

	out, err := d.Perform("424242", &dto.ActionSet{
		Actions: []dto.Action{{
			Intent: constants.IntentMarkAttendance,
			Params: dto.ActionParams{
				SubjectCode: "DC",
				DateOfSlot:  "2026-09-02", // Rabu
				StartTime:   "09:00",
				EndTime:     "10:00",
				ClassType:   constants.ClassLecture,
				Status:      constants.StatusAbsent,
			},
		}},
		ConfirmationMessage: "ok",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "2026-09-02")

	var slot attendanceModel.TimetableSlotModel
	require.NoError(t, db.First(&slot).Error)
	assert.Equal(t, constants.DayWed, slot.TimetableSlotDay)
}

func TestPerformConfusionFlag(t *testing.T) {
	db := newTestDB(t)
	d := NewDispatcher(db)
	seedUser(t, db)

	out, err := d.Perform("424242", &dto.ActionSet{
		Actions: []dto.Action{{
			Intent: constants.IntentMarkAttendance,
			Params: dto.ActionParams{SubjectCode: "DC", ConfusionFlag: true},
		}},
		ConfirmationMessage: "ok",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "clarify")
}

func TestPerformFailureDoesNotStopOtherActions(t *testing.T) {
	db := newTestDB(t)
	d := NewDispatcher(db)
	seedUser(t, db)
	_, err := attendanceService.NewAttendanceService(db).CreateSubject("DC", "Distributed Computing")
	require.NoError(t, err)

	out, err := d.Perform("424242", &dto.ActionSet{
		Actions: []dto.Action{
			{
				Intent: constants.IntentMarkAttendance,
				Params: dto.ActionParams{
					SubjectCode: "GHOST", // subject tidak ada → baris gagal
					DayOfSlot:   constants.DayWed,
					StartTime:   "09:00",
					EndTime:     "10:00",
					ClassType:   constants.ClassLecture,
					Status:      constants.StatusPresent,
				},
			},
			{
				Intent: constants.IntentGetDailyTimetable,
				Params: dto.ActionParams{DayOfSlot: constants.DayWed},
			},
		},
		ConfirmationMessage: "ok",
	})
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], "Failed to mark attendance")
	assert.Contains(t, lines[1], "No timetable available")
}

func TestPerformInvalidDateLine(t *testing.T) {
	db := newTestDB(t)
	d := NewDispatcher(db)
	seedUser(t, db)

	out, err := d.Perform("424242", &dto.ActionSet{
		Actions: []dto.Action{{
			Intent: constants.IntentGetAttendanceLogsForDate,
			Params: dto.ActionParams{DateOfSlot: "bukan-tanggal"},
		}},
		ConfirmationMessage: "ok",
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid date")
}
