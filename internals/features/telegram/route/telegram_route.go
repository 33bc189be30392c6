package route

import (
	"github.com/gofiber/fiber/v2"

	"absenku_backend/internals/features/telegram/controller"
	telegramService "absenku_backend/internals/features/telegram/service"
	"absenku_backend/internals/middlewares"
)

// TelegramRoutes — webhook publik (diverifikasi secret token Telegram) plus
// endpoint manajemen webhook di belakang API secret.
func TelegramRoutes(app *fiber.App, conversation *telegramService.ConversationService, sender *telegramService.BotSender) {
	ctrl := controller.NewWebhookController(conversation, sender)

	tg := app.Group("/adapters/telegram")
	tg.Post("/webhook", ctrl.Webhook)

	admin := tg.Group("/", middlewares.APISecretMiddleware())
	admin.Get("/set-webhook", ctrl.SetWebhook)
	admin.Get("/delete-webhook", ctrl.DeleteWebhook)
	admin.Put("/bot-disabled", ctrl.SetBotDisabled)
}
