package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"

	"absenku_backend/internals/configs"
	database "absenku_backend/internals/databases"
	"absenku_backend/internals/features/assistant/llm"
	assistantService "absenku_backend/internals/features/assistant/service"
	telegramService "absenku_backend/internals/features/telegram/service"
	middlewares "absenku_backend/internals/middlewares"
	routes "absenku_backend/internals/route"
	"absenku_backend/internals/scheduler"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timing (observability ringan)
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		log.Printf("[REQ] id=%s %s %s status=%d dur=%s", id, c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur)
		return err
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + migrasi
	database.ConnectDB()
	database.TunePool()
	database.Migrate()

	// ⏱ scheduler setelah DB siap
	scheduler.StartPendingCleanupScheduler(database.DB)

	// 🤖 klien LLM
	groq, err := llm.NewGroqClient(&llm.GroqConfig{
		APIKey: configs.GroqAPIKey,
		Model:  configs.GroqModel,
	})
	if err != nil {
		log.Fatalf("❌ Groq client: %v", err)
	}
	intake := assistantService.NewIntakeService(database.DB, groq)

	// ✈️ bot Telegram (opsional: tanpa token, cuma REST yang jalan)
	var sender *telegramService.BotSender
	var conversation *telegramService.ConversationService
	if configs.TelegramBotKey != "" {
		sender, err = telegramService.NewBotSender(configs.TelegramBotKey)
		if err != nil {
			log.Fatalf("❌ Telegram bot: %v", err)
		}
		conversation = telegramService.NewConversationService(database.DB, sender, intake)
	} else {
		log.Println("⚠️ TELEGRAM_BOT_KEY kosong, adapter Telegram dinonaktifkan")
	}

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, intake, conversation, sender)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 150 * time.Second // intake menunggu LLM
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	rootCtx, stopPolling := context.WithCancel(context.Background())

	// mode polling untuk development lokal tanpa URL publik
	if conversation != nil && configs.GetEnv("TELEGRAM_POLLING", "false") == "true" {
		go telegramService.RunPolling(rootCtx, sender, conversation)
	}

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	stopPolling()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	if sqlDB, err := database.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
