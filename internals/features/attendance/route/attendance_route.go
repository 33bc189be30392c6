package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absenku_backend/internals/features/attendance/controller"
)

// AttendanceRoutes — subject, slot, attendance, timetable, stats.
func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceController(db)

	subjects := api.Group("/subjects")
	subjects.Post("/", ctrl.CreateSubject)
	subjects.Delete("/", ctrl.DeleteSubject)

	slots := api.Group("/slots")
	slots.Post("/", ctrl.AddSlot)
	slots.Put("/", ctrl.UpdateSlot)
	slots.Delete("/", ctrl.DeleteSlot)

	attendance := api.Group("/attendance")
	attendance.Post("/", ctrl.MarkAttendance)
	attendance.Get("/stats/:contact_id", ctrl.GetAttendanceStats)
	attendance.Get("/logs/:contact_id/:date", ctrl.GetAttendanceLogsForDate)

	api.Get("/timetable/:contact_id/:day", ctrl.GetDailyTimetable)
}
