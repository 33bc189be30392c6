package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"absenku_backend/internals/constants"
	attendanceModel "absenku_backend/internals/features/attendance/model"
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
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, admin bool) *userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		UserUID:      uuid.NewString(),
		UserName:     "Budi",
		UserDivision: "A",
		UserYear:     2,
		UserBatch:    "B1",
		UserBranch:   "COMPS",
		UserContact:  uuid.NewString(),
		UserIsAdmin:  admin,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedSubject(t *testing.T, svc *AttendanceService, code, name string) {
	t.Helper()
	_, err := svc.CreateSubject(code, name)
	require.NoError(t, err)
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code
}

var wednesday = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC) // hari Rabu

func TestMarkCreatesTemporarySlotWhenNoneMatches(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db)
	u := seedUser(t, db, false)
	seedSubject(t, svc, "DC", "Distributed Computing")

	res, err := svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"9:00", "10:00", constants.ClassLecture, constants.StatusPresent, wednesday)
	require.NoError(t, err)
	assert.True(t, res.TempCreated)
	assert.Equal(t, constants.StatusPresent, res.Log.AttendanceLogStatus)

	var slot attendanceModel.TimetableSlotModel
	require.NoError(t, db.First(&slot, "timetable_slot_id = ?", res.Log.AttendanceLogSlotID).Error)
	assert.True(t, slot.TimetableSlotIsTemporary)
	require.NotNil(t, slot.TimetableSlotDateOfSlot)
	assert.Equal(t, "09:00", slot.TimetableSlotStartTime)

	stats, err := svc.StatsFor(u.UserID, "DC", constants.ClassLecture)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].AttendanceStatsTotalClasses)
	assert.Equal(t, 1, stats[0].AttendanceStatsAttendedClasses)
}

func TestMarkReusesRegularSlot(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db)
	u := seedUser(t, db, false)
	seedSubject(t, svc, "DC", "Distributed Computing")

	slot, err := svc.AddSlot(u.UserID, constants.DayWed, "09:00", "10:00", "DC", constants.ClassLecture)
	require.NoError(t, err)

	res, err := svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"09:00", "10:00", constants.ClassLecture, constants.StatusPresent, wednesday)
	require.NoError(t, err)
	assert.False(t, res.TempCreated)
	assert.Equal(t, slot.TimetableSlotID, res.Log.AttendanceLogSlotID)
}

func TestMarkSameStatusTwiceIsConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db)
	u := seedUser(t, db, false)
	seedSubject(t, svc, "DC", "Distributed Computing")

	_, err := svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"09:00", "10:00", constants.ClassLecture, constants.StatusPresent, wednesday)
	require.NoError(t, err)

	_, err = svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"09:00", "10:00", constants.ClassLecture, constants.StatusPresent, wednesday)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	// counter tidak boleh berubah
	stats, err := svc.StatsFor(u.UserID, "DC", constants.ClassLecture)
	require.NoError(t, err)
	assert.Equal(t, 1, stats[0].AttendanceStatsTotalClasses)
	assert.Equal(t, 1, stats[0].AttendanceStatsAttendedClasses)
}

func TestMarkCorrectionReversesStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db)
	u := seedUser(t, db, false)
	seedSubject(t, svc, "DC", "Distributed Computing")

	_, err := svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"09:00", "10:00", constants.ClassLecture, constants.StatusPresent, wednesday)
	require.NoError(t, err)

	// koreksi present → absent: total tetap 1, attended turun ke 0
	_, err = svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"09:00", "10:00", constants.ClassLecture, constants.StatusAbsent, wednesday)
	require.NoError(t, err)

	stats, err := svc.StatsFor(u.UserID, "DC", constants.ClassLecture)
	require.NoError(t, err)
	assert.Equal(t, 1, stats[0].AttendanceStatsTotalClasses)
	assert.Equal(t, 0, stats[0].AttendanceStatsAttendedClasses)

	// hanya satu log tersisa di (slot, tanggal)
	var logs int64
	require.NoError(t, db.Model(&attendanceModel.AttendanceLogModel{}).Count(&logs).Error)
	assert.EqualValues(t, 1, logs)

	// koreksi balik absent → present
	_, err = svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"09:00", "10:00", constants.ClassLecture, constants.StatusPresent, wednesday)
	require.NoError(t, err)

	stats, err = svc.StatsFor(u.UserID, "DC", constants.ClassLecture)
	require.NoError(t, err)
	assert.Equal(t, 1, stats[0].AttendanceStatsTotalClasses)
	assert.Equal(t, 1, stats[0].AttendanceStatsAttendedClasses)
}

func TestMarkCancelledNeverCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db)
	u := seedUser(t, db, false)
	seedSubject(t, svc, "DC", "Distributed Computing")

	_, err := svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"09:00", "10:00", constants.ClassLecture, constants.StatusCancelled, wednesday)
	require.NoError(t, err)

	stats, err := svc.StatsFor(u.UserID, "DC", constants.ClassLecture)
	require.NoError(t, err)
	assert.Equal(t, 0, stats[0].AttendanceStatsTotalClasses)
	assert.Equal(t, 0, stats[0].AttendanceStatsAttendedClasses)

	// koreksi present → cancelled juga mengembalikan counter ke nol
	_, err = svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"11:00", "12:00", constants.ClassLecture, constants.StatusPresent, wednesday)
	require.NoError(t, err)
	_, err = svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"11:00", "12:00", constants.ClassLecture, constants.StatusCancelled, wednesday)
	require.NoError(t, err)

	stats, err = svc.StatsFor(u.UserID, "DC", constants.ClassLecture)
	require.NoError(t, err)
	assert.Equal(t, 0, stats[0].AttendanceStatsTotalClasses)
	assert.Equal(t, 0, stats[0].AttendanceStatsAttendedClasses)
}

func TestMarkUnknownSubject(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db)
	u := seedUser(t, db, false)

	_, err := svc.ResolveAndMark(u.UserID, "XX", constants.DayWed,
		"09:00", "10:00", constants.ClassLecture, constants.StatusPresent, wednesday)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestMarkValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db)
	u := seedUser(t, db, false)
	seedSubject(t, svc, "DC", "Distributed Computing")

	_, err := svc.ResolveAndMark(u.UserID, "DC", "Funday",
		"09:00", "10:00", constants.ClassLecture, constants.StatusPresent, wednesday)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	_, err = svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"", "10:00", constants.ClassLecture, constants.StatusPresent, wednesday)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	_, err = svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"10:00", "09:00", constants.ClassLecture, constants.StatusPresent, wednesday)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))

	_, err = svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"09:00", "10:00", "seminar", constants.StatusPresent, wednesday)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestDailyTimetable(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db)
	u := seedUser(t, db, false)
	seedSubject(t, svc, "DC", "Distributed Computing")
	seedSubject(t, svc, "ML", "Machine Learning")

	_, err := svc.AddSlot(u.UserID, constants.DayWed, "11:00", "12:00", "ML", constants.ClassLab)
	require.NoError(t, err)
	_, err = svc.AddSlot(u.UserID, constants.DayWed, "09:00", "10:00", "DC", constants.ClassLecture)
	require.NoError(t, err)

	// slot temporary tidak ikut tampil di timetable reguler
	_, err = svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"14:00", "15:00", constants.ClassTutorial, constants.StatusPresent, wednesday)
	require.NoError(t, err)

	slots, err := svc.DailyTimetable(u.UserID, constants.DayWed)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "09:00", slots[0].TimetableSlotStartTime)
	assert.Equal(t, "11:00", slots[1].TimetableSlotStartTime)

	_, err = svc.DailyTimetable(u.UserID, constants.DaySun)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestLogsForDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db)
	u := seedUser(t, db, false)
	seedSubject(t, svc, "DC", "Distributed Computing")

	_, err := svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"09:00", "10:00", constants.ClassLecture, constants.StatusPresent, wednesday)
	require.NoError(t, err)
	_, err = svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"11:00", "12:00", constants.ClassLab, constants.StatusAbsent, wednesday)
	require.NoError(t, err)

	rows, err := svc.LogsForDate(u.UserID, wednesday)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "DC", rows[0].Slot.TimetableSlotSubjectCode)

	// tanggal tanpa log → slice kosong, bukan error
	empty, err := svc.LogsForDate(u.UserID, wednesday.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestStatsForAllSubjects(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db)
	u := seedUser(t, db, false)
	seedSubject(t, svc, "DC", "Distributed Computing")
	seedSubject(t, svc, "ML", "Machine Learning")

	_, err := svc.StatsFor(u.UserID, "", "")
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))

	_, err = svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"09:00", "10:00", constants.ClassLecture, constants.StatusPresent, wednesday)
	require.NoError(t, err)
	_, err = svc.ResolveAndMark(u.UserID, "ML", constants.DayWed,
		"11:00", "12:00", constants.ClassLab, constants.StatusAbsent, wednesday)
	require.NoError(t, err)

	rows, err := svc.StatsFor(u.UserID, "", "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "DC", rows[0].AttendanceStatsSubjectCode)
	assert.Equal(t, "ML", rows[1].AttendanceStatsSubjectCode)
}

func TestCreateSubjectDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db)
	seedSubject(t, svc, "DC", "Distributed Computing")

	_, err := svc.CreateSubject("DC", "Different Name")
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	_, err = svc.CreateSubject("DC2", "Distributed Computing")
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))
}

func TestDeleteSubjectAdminOnlyAndCascade(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db)
	admin := seedUser(t, db, true)
	pleb := seedUser(t, db, false)
	seedSubject(t, svc, "DC", "Distributed Computing")

	_, err := svc.AddSlot(admin.UserID, constants.DayWed, "09:00", "10:00", "DC", constants.ClassLecture)
	require.NoError(t, err)
	_, err = svc.ResolveAndMark(admin.UserID, "DC", constants.DayWed,
		"09:00", "10:00", constants.ClassLecture, constants.StatusPresent, wednesday)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, svc.DeleteSubject(pleb, "DC")))
	require.NoError(t, svc.DeleteSubject(admin, "DC"))

	var slots, stats int64
	require.NoError(t, db.Model(&attendanceModel.TimetableSlotModel{}).Count(&slots).Error)
	require.NoError(t, db.Model(&attendanceModel.AttendanceStatsModel{}).Count(&stats).Error)
	assert.Zero(t, slots)
	assert.Zero(t, stats)

	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, svc.DeleteSubject(admin, "DC")))
}

func TestAddSlotOverlap(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db)
	u := seedUser(t, db, false)
	seedSubject(t, svc, "DC", "Distributed Computing")
	seedSubject(t, svc, "ML", "Machine Learning")

	_, err := svc.AddSlot(u.UserID, constants.DayWed, "09:00", "10:00", "DC", constants.ClassLecture)
	require.NoError(t, err)

	// bentrok parsial
	_, err = svc.AddSlot(u.UserID, constants.DayWed, "09:30", "10:30", "ML", constants.ClassLab)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	// nempel di ujung boleh
	_, err = svc.AddSlot(u.UserID, constants.DayWed, "10:00", "11:00", "ML", constants.ClassLab)
	require.NoError(t, err)

	// hari lain boleh
	_, err = svc.AddSlot(u.UserID, constants.DayThu, "09:00", "10:00", "ML", constants.ClassLab)
	require.NoError(t, err)

	_, err = svc.AddSlot(u.UserID, constants.DayWed, "09:00", "10:00", "XX", constants.ClassLecture)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestUpdateSlot(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db)
	u := seedUser(t, db, false)
	seedSubject(t, svc, "DC", "Distributed Computing")
	seedSubject(t, svc, "ML", "Machine Learning")

	_, err := svc.AddSlot(u.UserID, constants.DayWed, "09:00", "10:00", "DC", constants.ClassLecture)
	require.NoError(t, err)
	_, err = svc.AddSlot(u.UserID, constants.DayWed, "11:00", "12:00", "ML", constants.ClassLab)
	require.NoError(t, err)

	newStart, newEnd := "14:00", "15:00"
	out, err := svc.UpdateSlot(u.UserID, constants.DayWed, "09:00", "10:00",
		constants.ClassLecture, "DC",
		SlotPatch{StartTime: &newStart, EndTime: &newEnd})
	require.NoError(t, err)
	assert.Equal(t, "14:00", out.TimetableSlotStartTime)
	assert.Equal(t, "15:00", out.TimetableSlotEndTime)

	// geser ke interval yang sudah terisi → conflict
	clash := "11:30"
	clashEnd := "12:30"
	_, err = svc.UpdateSlot(u.UserID, constants.DayWed, "14:00", "15:00",
		constants.ClassLecture, "DC",
		SlotPatch{StartTime: &clash, EndTime: &clashEnd})
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	// slot tidak ada → 404
	_, err = svc.UpdateSlot(u.UserID, constants.DayFri, "09:00", "10:00",
		constants.ClassLecture, "DC", SlotPatch{})
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestDeleteSlotWithLogs(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttendanceService(db)
	u := seedUser(t, db, false)
	seedSubject(t, svc, "DC", "Distributed Computing")

	_, err := svc.AddSlot(u.UserID, constants.DayWed, "09:00", "10:00", "DC", constants.ClassLecture)
	require.NoError(t, err)
	_, err = svc.ResolveAndMark(u.UserID, "DC", constants.DayWed,
		"09:00", "10:00", constants.ClassLecture, constants.StatusPresent, wednesday)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSlot(u.UserID, constants.DayWed, "09:00", "10:00",
		constants.ClassLecture, "DC"))

	var logs int64
	require.NoError(t, db.Model(&attendanceModel.AttendanceLogModel{}).Count(&logs).Error)
	assert.Zero(t, logs)

	err = svc.DeleteSlot(u.UserID, constants.DayWed, "09:00", "10:00",
		constants.ClassLecture, "DC")
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}
