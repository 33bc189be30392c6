package constants

// Day — hari dalam seminggu untuk slot timetable (format singkat, sama
// dengan time.Time.Format("Mon")).
type Day string

const (
	DayMon Day = "Mon"
	DayTue Day = "Tue"
	DayWed Day = "Wed"
	DayThu Day = "Thu"
	DayFri Day = "Fri"
	DaySat Day = "Sat"
	DaySun Day = "Sun"
)

var AllDays = []Day{DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun}

func (d Day) Valid() bool {
	switch d {
	case DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun:
		return true
	}
	return false
}

// ClassType — jenis sesi kelas.
type ClassType string

const (
	ClassLecture  ClassType = "lecture"
	ClassLab      ClassType = "lab"
	ClassTutorial ClassType = "tutorial"
)

func (t ClassType) Valid() bool {
	switch t {
	case ClassLecture, ClassLab, ClassTutorial:
		return true
	}
	return false
}

// AttendanceStatus — status kehadiran per kelas. Cancelled tidak pernah
// mempengaruhi counter total/attended.
type AttendanceStatus string

const (
	StatusPresent   AttendanceStatus = "present"
	StatusAbsent    AttendanceStatus = "absent"
	StatusCancelled AttendanceStatus = "cancelled"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusCancelled:
		return true
	}
	return false
}

// Intent — semua intent yang bisa dihasilkan LLM dari satu pesan user.
type Intent string

const (
	IntentCreateSubject            Intent = "create_subject"
	IntentAddSlot                  Intent = "add_slot"
	IntentMarkAttendance           Intent = "mark_attendance"
	IntentGetDailyTimetable        Intent = "get_daily_timetable"
	IntentGetAttendanceStats       Intent = "get_attendance_stats"
	IntentUpdateSlot               Intent = "update_slot"
	IntentDeleteSubject            Intent = "delete_subject"
	IntentDeleteSlot               Intent = "delete_slot"
	IntentGetAttendanceLogsForDate Intent = "get_attendance_logs_for_date"
)

// PendingStatus — lifecycle pending action: pending → confirmed / cancelled.
type PendingStatus string

const (
	PendingStatusPending   PendingStatus = "pending"
	PendingStatusConfirmed PendingStatus = "confirmed"
	PendingStatusCancelled PendingStatus = "cancelled"
)
