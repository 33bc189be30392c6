package controller

import (
	"github.com/gofiber/fiber/v2"

	assistantService "absenku_backend/internals/features/assistant/service"
	helper "absenku_backend/internals/helpers"
)

type AssistantController struct {
	Intake *assistantService.IntakeService
}

func NewAssistantController(intake *assistantService.IntakeService) *AssistantController {
	return &AssistantController{Intake: intake}
}

// GET /api/main?user_message=...&contact_id=...
//
// Endpoint intake langsung (tanpa Telegram): parse pesan jadi action set,
// simpan sebagai pending action, kembalikan confirmation message.
func (ctrl *AssistantController) Main(c *fiber.Ctx) error {
	userMessage := c.Query("user_message")
	contactID := c.Query("contact_id")
	if userMessage == "" || contactID == "" {
		return helper.Error(c, fiber.StatusBadRequest, "user_message dan contact_id wajib diisi")
	}

	confirmation, err := ctrl.Intake.HandleMessage(c.Context(), contactID, userMessage)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Menunggu konfirmasi", fiber.Map{
		"contact_id":           contactID,
		"confirmation_message": confirmation,
	})
}
