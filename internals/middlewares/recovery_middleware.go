package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic supaya proses tidak mati di tengah
// request, lalu mengembalikan 500 ke client. Panic dicatat bersama reqid
// agar gampang dilacak di access log.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("[PANIC] id=%v %s %s: %v\n%s", c.Locals("reqid"), c.Method(), c.OriginalURL(), e, debug.Stack())
		},
	})
}
