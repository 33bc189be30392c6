package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absenku_backend/internals/constants"
	"absenku_backend/internals/features/attendance/dto"
	attendanceService "absenku_backend/internals/features/attendance/service"
	userService "absenku_backend/internals/features/users/service"
	helper "absenku_backend/internals/helpers"
	"absenku_backend/internals/helpers/dbtime"
)

type AttendanceController struct {
	Attendance *attendanceService.AttendanceService
	Users      *userService.UserService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		Attendance: attendanceService.NewAttendanceService(db),
		Users:      userService.NewUserService(db),
	}
}

var validate = validator.New()

// POST /api/subjects
func (ctrl *AttendanceController) CreateSubject(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := ctrl.Attendance.CreateSubject(req.SubjectCode, req.SubjectName)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subject berhasil dibuat", dto.ToSubjectResponse(m))
}

// DELETE /api/subjects
func (ctrl *AttendanceController) DeleteSubject(c *fiber.Ctx) error {
	var req dto.DeleteSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	actor, err := ctrl.Users.ByContact(req.ContactID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.Attendance.DeleteSubject(actor, req.SubjectCode); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Subject beserta slot dan stats-nya terhapus", fiber.Map{
		"subject_code": req.SubjectCode,
	})
}

// POST /api/slots
func (ctrl *AttendanceController) AddSlot(c *fiber.Ctx) error {
	var req dto.SlotKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	u, err := ctrl.Users.ByContact(req.ContactID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := ctrl.Attendance.AddSlot(u.UserID, constants.Day(req.Day),
		req.StartTime, req.EndTime, req.SubjectCode, constants.ClassType(req.ClassType))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Slot berhasil ditambahkan", dto.ToSlotResponse(m))
}

// PUT /api/slots
func (ctrl *AttendanceController) UpdateSlot(c *fiber.Ctx) error {
	var req dto.UpdateSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	u, err := ctrl.Users.ByContact(req.ContactID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	patch := attendanceService.SlotPatch{
		StartTime:   req.Updated.StartTime,
		EndTime:     req.Updated.EndTime,
		SubjectCode: req.Updated.SubjectCode,
	}
	if req.Updated.Day != nil {
		d := constants.Day(*req.Updated.Day)
		patch.Day = &d
	}
	if req.Updated.ClassType != nil {
		ct := constants.ClassType(*req.Updated.ClassType)
		patch.ClassType = &ct
	}

	m, err := ctrl.Attendance.UpdateSlot(u.UserID, constants.Day(req.Day),
		req.StartTime, req.EndTime, constants.ClassType(req.ClassType), req.SubjectCode, patch)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Slot berhasil diupdate", dto.ToSlotResponse(m))
}

// DELETE /api/slots
func (ctrl *AttendanceController) DeleteSlot(c *fiber.Ctx) error {
	var req dto.SlotKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	u, err := ctrl.Users.ByContact(req.ContactID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.Attendance.DeleteSlot(u.UserID, constants.Day(req.Day),
		req.StartTime, req.EndTime, constants.ClassType(req.ClassType), req.SubjectCode); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Slot berhasil dihapus", nil)
}

// POST /api/attendance
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	u, err := ctrl.Users.ByContact(req.ContactID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	date, err := dbtime.ParseDate(req.DateOfSlot)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res, err := ctrl.Attendance.ResolveAndMark(u.UserID, req.SubjectCode,
		constants.Day(req.Day), req.StartTime, req.EndTime,
		constants.ClassType(req.ClassType), constants.AttendanceStatus(req.Status), date)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kehadiran tercatat",
		dto.ToMarkAttendanceResponse(&res.Log, res.TempCreated))
}

// GET /api/timetable/:contact_id/:day
func (ctrl *AttendanceController) GetDailyTimetable(c *fiber.Ctx) error {
	u, err := ctrl.Users.ByContact(c.Params("contact_id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	slots, err := ctrl.Attendance.DailyTimetable(u.UserID, constants.Day(c.Params("day")))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Timetable ditemukan", dto.ToSlotResponses(slots))
}

// GET /api/attendance/stats/:contact_id — opsional ?subject_code=&class_type=
func (ctrl *AttendanceController) GetAttendanceStats(c *fiber.Ctx) error {
	u, err := ctrl.Users.ByContact(c.Params("contact_id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := ctrl.Attendance.StatsFor(u.UserID,
		c.Query("subject_code"), constants.ClassType(c.Query("class_type")))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Stats ditemukan", dto.ToStatsResponses(rows))
}

// GET /api/attendance/logs/:contact_id/:date
func (ctrl *AttendanceController) GetAttendanceLogsForDate(c *fiber.Ctx) error {
	u, err := ctrl.Users.ByContact(c.Params("contact_id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	date, err := dbtime.ParseDate(c.Params("date"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	rows, err := ctrl.Attendance.LogsForDate(u.UserID, date)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	out := make([]dto.AttendanceLogResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToAttendanceLogResponse(&rows[i].Slot, &rows[i].Log))
	}
	return helper.Success(c, "Log kehadiran tanggal "+dto.FormatDate(date), out)
}
