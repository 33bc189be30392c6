package routes

import (
	"github.com/gofiber/fiber/v2"

	assistantController "absenku_backend/internals/features/assistant/controller"
	assistantService "absenku_backend/internals/features/assistant/service"
	"absenku_backend/internals/middlewares"
)

// AssistantRoutes — endpoint intake LLM; rate limit lebih ketat karena tiap
// hit memanggil model.
func AssistantRoutes(api fiber.Router, intake *assistantService.IntakeService) {
	ctrl := assistantController.NewAssistantController(intake)
	api.Get("/main", middlewares.AssistantRateLimiter(), ctrl.Main)
}
