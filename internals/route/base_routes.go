package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime = time.Now()

// BaseRoutes — endpoint publik tanpa secret: root sapaan + health check.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		name := c.Query("name")
		if name != "" {
			return c.JSON(fiber.Map{"message": "Hello, " + name + "!"})
		}
		return c.JSON(fiber.Map{"message": "Hello, World!"})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}
		code := fiber.StatusOK
		if dbStatus != "ok" {
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":   dbStatus,
			"uptime":   time.Since(startTime).Round(time.Second).String(),
			"database": dbStatus,
		})
	})

}
