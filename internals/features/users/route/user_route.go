package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"absenku_backend/internals/features/users/controller"
)

// UserRoutes — endpoint user, semua di belakang API secret middleware.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := api.Group("/users")
	users.Post("/", ctrl.CreateUser)
	users.Get("/:contact_id", ctrl.GetUserByContact)
}
