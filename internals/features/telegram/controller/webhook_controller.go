package controller

import (
	"crypto/subtle"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"

	"absenku_backend/internals/configs"
	telegramService "absenku_backend/internals/features/telegram/service"
	helper "absenku_backend/internals/helpers"
)

type WebhookController struct {
	Conversation *telegramService.ConversationService
	Sender       *telegramService.BotSender
}

func NewWebhookController(conversation *telegramService.ConversationService, sender *telegramService.BotSender) *WebhookController {
	return &WebhookController{Conversation: conversation, Sender: sender}
}

// POST /adapters/telegram/webhook
//
// Header X-Telegram-Bot-Api-Secret-Token harus cocok dengan token yang kita
// daftarkan via SetWebhook; tanpa itu siapa pun bisa menyuntik update palsu.
func (ctrl *WebhookController) Webhook(c *fiber.Ctx) error {
	got := c.Get("X-Telegram-Bot-Api-Secret-Token")
	if configs.WebhookSecretToken == "" ||
		subtle.ConstantTimeCompare([]byte(got), []byte(configs.WebhookSecretToken)) != 1 {
		return helper.Error(c, fiber.StatusForbidden, "Forbidden")
	}

	var update tgbotapi.Update
	if err := c.BodyParser(&update); err != nil {
		log.Printf("[TELEGRAM] body webhook tidak valid: %v", err)
		return helper.Error(c, fiber.StatusBadRequest, "Update tidak valid")
	}

	if update.Message != nil && update.Message.From != nil {
		contactID := strconv.FormatInt(update.Message.From.ID, 10)
		ctrl.Conversation.ProcessMessage(c.Context(), update.Message.Chat.ID, contactID, update.Message.Text)
	}

	// Telegram cuma peduli 200; error percakapan sudah dibalas via bot
	return c.JSON(fiber.Map{"ok": true})
}

// GET /adapters/telegram/set-webhook (di belakang API secret)
func (ctrl *WebhookController) SetWebhook(c *fiber.Ctx) error {
	webhookURL := configs.BaseURL + "/adapters/telegram/webhook"
	if err := ctrl.Sender.SetWebhook(webhookURL, configs.WebhookSecretToken); err != nil {
		return helper.Error(c, fiber.StatusBadGateway, err.Error())
	}
	return helper.Success(c, "Webhook berhasil didaftarkan", fiber.Map{"url": webhookURL})
}

// GET /adapters/telegram/delete-webhook (di belakang API secret)
func (ctrl *WebhookController) DeleteWebhook(c *fiber.Ctx) error {
	if err := ctrl.Sender.DeleteWebhook(); err != nil {
		return helper.Error(c, fiber.StatusBadGateway, err.Error())
	}
	return helper.Success(c, "Webhook dihapus", nil)
}

// PUT /adapters/telegram/bot-disabled (di belakang API secret)
//
// Toggle runtime: bot menjawab "temporarily down" tanpa restart proses.
func (ctrl *WebhookController) SetBotDisabled(c *fiber.Ctx) error {
	var body struct {
		Disabled bool `json:"disabled"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	configs.SetBotDisabled(body.Disabled)
	return helper.Success(c, "Flag bot diperbarui", fiber.Map{"disabled": body.Disabled})
}
