// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assistantService "absenku_backend/internals/features/assistant/service"
	attendanceRoute "absenku_backend/internals/features/attendance/route"
	telegramRoute "absenku_backend/internals/features/telegram/route"
	telegramService "absenku_backend/internals/features/telegram/service"
	userRoute "absenku_backend/internals/features/users/route"
	"absenku_backend/internals/middlewares"
)

// SetupRoutes memasang semua endpoint.
//
// Dua permukaan:
//   - /api/*               REST CRUD + intake, di belakang X-Api-Secret-Key
//   - /adapters/telegram/* webhook bot (verifikasi secret token Telegram)
func SetupRoutes(app *fiber.App, db *gorm.DB, intake *assistantService.IntakeService,
	conversation *telegramService.ConversationService, sender *telegramService.BotSender) {

	BaseRoutes(app, db)

	// ===================== API (secret key) =====================
	log.Println("[INFO] Setting up API group...")
	api := app.Group("/api", middlewares.APISecretMiddleware())

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(api, db)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	attendanceRoute.AttendanceRoutes(api, db)

	log.Println("[INFO] Setting up AssistantRoutes...")
	AssistantRoutes(api, intake)

	// ===================== TELEGRAM =====================
	if conversation != nil && sender != nil {
		log.Println("[INFO] Setting up TelegramRoutes...")
		telegramRoute.TelegramRoutes(app, conversation, sender)
	} else {
		log.Println("[WARN] Telegram bot tidak dikonfigurasi, route adapter dilewati")
	}
}
