package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absenku_backend/internals/constants"
	"absenku_backend/internals/features/assistant/dto"
	attendanceService "absenku_backend/internals/features/attendance/service"
	userModel "absenku_backend/internals/features/users/model"
	userService "absenku_backend/internals/features/users/service"
	"absenku_backend/internals/helpers/dbtime"
)

// Dispatcher mengeksekusi action set yang sudah dikonfirmasi user: satu
// handler per intent, hasil per-action dikumpulkan jadi satu pesan balasan.
// Satu action gagal tidak menghentikan action lainnya.
type Dispatcher struct {
	Users      *userService.UserService
	Attendance *attendanceService.AttendanceService

	handlers map[constants.Intent]actionHandler
}

// actionHandler mengeksekusi satu action dan mengembalikan satu baris hasil.
// date sudah ter-resolve (dari params, atau default hari ini).
type actionHandler func(u *userModel.UserModel, p *dto.ActionParams, date time.Time) string

func NewDispatcher(db *gorm.DB) *Dispatcher {
	d := &Dispatcher{
		Users:      userService.NewUserService(db),
		Attendance: attendanceService.NewAttendanceService(db),
	}
	d.handlers = map[constants.Intent]actionHandler{
		constants.IntentCreateSubject:            d.createSubject,
		constants.IntentAddSlot:                  d.addSlot,
		constants.IntentMarkAttendance:           d.markAttendance,
		constants.IntentGetDailyTimetable:        d.dailyTimetable,
		constants.IntentGetAttendanceStats:       d.attendanceStats,
		constants.IntentUpdateSlot:               d.updateSlot,
		constants.IntentDeleteSubject:            d.deleteSubject,
		constants.IntentDeleteSlot:               d.deleteSlot,
		constants.IntentGetAttendanceLogsForDate: d.logsForDate,
	}
	return d
}

// Perform menjalankan semua action milik satu contact dan menggabungkan
// baris-baris hasilnya. "Hari ini" di-resolve sekali per pemanggilan, bukan
// saat proses start, jadi proses yang hidup lama tidak pernah pakai tanggal
// basi.
func (d *Dispatcher) Perform(contactID string, set *dto.ActionSet) (string, error) {
	user, err := d.Users.ByContact(contactID)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "User not found. Please register first.")
	}

	today := dbtime.NormalizeDate(time.Now())
	var lines []string

	for i := range set.Actions {
		action := &set.Actions[i]
		p := &action.Params

		if p.ConfusionFlag {
			lines = append(lines, fmt.Sprintf(
				"I couldn't understand part of your request (%s). Could you please clarify?",
				describeAction(action)))
			continue
		}

		// resolve tanggal: params → default hari ini; day menyusul dari
		// tanggal kalau LLM cuma mengisi salah satunya
		date := today
		if p.DateOfSlot != "" {
			parsed, err := dbtime.ParseDate(p.DateOfSlot)
			if err != nil {
				lines = append(lines, fmt.Sprintf("Invalid date %q for %s.", p.DateOfSlot, action.Intent))
				continue
			}
			date = parsed
		}
		if p.DayOfSlot == "" {
			p.DayOfSlot = dbtime.DayOf(date)
		}

		handler, ok := d.handlers[action.Intent]
		if !ok {
			lines = append(lines, fmt.Sprintf("Unknown action %q.", action.Intent))
			continue
		}
		lines = append(lines, handler(user, p, date))
	}

	if len(lines) == 0 {
		return "", fiber.NewError(fiber.StatusBadRequest, "Tidak ada action yang bisa dieksekusi")
	}
	return strings.Join(lines, "\n"), nil
}

/* ===============================
   Handler per intent
=================================*/

func (d *Dispatcher) createSubject(_ *userModel.UserModel, p *dto.ActionParams, _ time.Time) string {
	if _, err := d.Attendance.CreateSubject(p.SubjectCode, p.SubjectName); err != nil {
		return "Failed to create subject. " + errDetail(err)
	}
	return fmt.Sprintf("Subject created successfully: %s.", p.SubjectCode)
}

func (d *Dispatcher) addSlot(u *userModel.UserModel, p *dto.ActionParams, _ time.Time) string {
	if _, err := d.Attendance.AddSlot(u.UserID, p.DayOfSlot, p.StartTime, p.EndTime,
		p.SubjectCode, p.ClassType); err != nil {
		return "Failed to add slot. " + errDetail(err)
	}
	return fmt.Sprintf("Slot added successfully for %s on %s %s-%s.",
		p.SubjectCode, p.DayOfSlot, p.StartTime, p.EndTime)
}

func (d *Dispatcher) markAttendance(u *userModel.UserModel, p *dto.ActionParams, date time.Time) string {
	res, err := d.Attendance.ResolveAndMark(u.UserID, p.SubjectCode, p.DayOfSlot,
		p.StartTime, p.EndTime, p.ClassType, p.Status, date)
	if err != nil {
		return fmt.Sprintf("Failed to mark attendance for %s %s. %s",
			p.SubjectCode, p.ClassType, errDetail(err))
	}
	tempNote := ""
	if res.TempCreated {
		tempNote = fmt.Sprintf(" (not in timetable for %s — temporary slot created)", p.DayOfSlot)
	}
	return fmt.Sprintf("Attendance marked as %s for %s (%s) on %s%s.",
		p.Status, p.SubjectCode, p.ClassType, date.Format("2006-01-02"), tempNote)
}

func (d *Dispatcher) dailyTimetable(u *userModel.UserModel, p *dto.ActionParams, _ time.Time) string {
	slots, err := d.Attendance.DailyTimetable(u.UserID, p.DayOfSlot)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok && fe.Code == fiber.StatusNotFound {
			return fmt.Sprintf("No timetable available for %s.", p.DayOfSlot)
		}
		return "Failed to retrieve timetable. " + errDetail(err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Timetable for %s:", p.DayOfSlot)
	for i, slot := range slots {
		fmt.Fprintf(&b, "\n%d. %s-%s %s - %s", i+1,
			slot.TimetableSlotStartTime, slot.TimetableSlotEndTime,
			slot.TimetableSlotSubjectCode, slot.TimetableSlotClassType)
	}
	return b.String()
}

func (d *Dispatcher) attendanceStats(u *userModel.UserModel, p *dto.ActionParams, _ time.Time) string {
	rows, err := d.Attendance.StatsFor(u.UserID, p.SubjectCode, p.ClassType)
	if err != nil {
		return "Failed to retrieve attendance stats. " + errDetail(err)
	}
	var lines []string
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf(
			"Attendance stats for %s %s: %d total classes, %d attended.",
			r.AttendanceStatsSubjectCode, r.AttendanceStatsClassType,
			r.AttendanceStatsTotalClasses, r.AttendanceStatsAttendedClasses))
	}
	return strings.Join(lines, "\n")
}

func (d *Dispatcher) updateSlot(u *userModel.UserModel, p *dto.ActionParams, _ time.Time) string {
	if p.UpdatedSlot == nil {
		return "Failed to update slot. No updated values were given."
	}
	patch := attendanceService.SlotPatch{
		Day:         p.UpdatedSlot.Day,
		StartTime:   p.UpdatedSlot.StartTime,
		EndTime:     p.UpdatedSlot.EndTime,
		SubjectCode: p.UpdatedSlot.SubjectCode,
		ClassType:   p.UpdatedSlot.ClassType,
	}
	if _, err := d.Attendance.UpdateSlot(u.UserID, p.DayOfSlot, p.StartTime, p.EndTime,
		p.ClassType, p.SubjectCode, patch); err != nil {
		return "Failed to update slot. " + errDetail(err)
	}
	return fmt.Sprintf("Slot updated successfully for %s.", p.SubjectCode)
}

func (d *Dispatcher) deleteSubject(u *userModel.UserModel, p *dto.ActionParams, _ time.Time) string {
	if err := d.Attendance.DeleteSubject(u, p.SubjectCode); err != nil {
		return "Failed to delete subject. " + errDetail(err)
	}
	return fmt.Sprintf("Subject deleted successfully: %s.", p.SubjectCode)
}

func (d *Dispatcher) deleteSlot(u *userModel.UserModel, p *dto.ActionParams, _ time.Time) string {
	if err := d.Attendance.DeleteSlot(u.UserID, p.DayOfSlot, p.StartTime, p.EndTime,
		p.ClassType, p.SubjectCode); err != nil {
		return "Failed to delete slot. " + errDetail(err)
	}
	return fmt.Sprintf("Slot deleted successfully for %s.", p.SubjectCode)
}

func (d *Dispatcher) logsForDate(u *userModel.UserModel, p *dto.ActionParams, date time.Time) string {
	rows, err := d.Attendance.LogsForDate(u.UserID, date)
	if err != nil {
		return "Failed to retrieve attendance logs. " + errDetail(err)
	}
	if len(rows) == 0 {
		return fmt.Sprintf("No attendance records found for %s.", date.Format("2006-01-02"))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Attendance on %s:", date.Format("2006-01-02"))
	for i, r := range rows {
		fmt.Fprintf(&b, "\n%d. %s (%s) %s-%s — %s", i+1,
			r.Slot.TimetableSlotSubjectCode, r.Slot.TimetableSlotClassType,
			r.Slot.TimetableSlotStartTime, r.Slot.TimetableSlotEndTime,
			r.Log.AttendanceLogStatus)
	}
	return b.String()
}

/* ===============================
   Util kecil
=================================*/

func errDetail(err error) string {
	if fe, ok := err.(*fiber.Error); ok {
		return fe.Message
	}
	return "Internal error."
}

func describeAction(a *dto.Action) string {
	parts := []string{string(a.Intent)}
	if a.Params.SubjectCode != "" {
		parts = append(parts, a.Params.SubjectCode)
	}
	if a.Params.DateOfSlot != "" {
		parts = append(parts, a.Params.DateOfSlot)
	}
	return strings.Join(parts, " ")
}
