package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat semua request masuk. Request-ID diambil dari
// locals "reqid" yang diisi middleware di main.go, jadi baris access log
// bisa dicocokkan dengan baris [REQ].
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "02/01/2006 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Format:     "[${time}] ${locals:reqid} ${ip} ${method} ${path} -> ${status} (${latency})\n",
	})
}
