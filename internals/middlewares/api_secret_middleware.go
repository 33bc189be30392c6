package middlewares

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"absenku_backend/internals/configs"
)

// APISecretMiddleware memverifikasi header X-Api-Secret-Key untuk semua
// endpoint REST (padanan verify_api_secret).
func APISecretMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := c.Get("X-Api-Secret-Key")
		if configs.APISecretKey == "" ||
			subtle.ConstantTimeCompare([]byte(got), []byte(configs.APISecretKey)) != 1 {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"code":    fiber.StatusForbidden,
				"status":  "error",
				"message": "Forbidden",
			})
		}
		return c.Next()
	}
}
