package configs

import (
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"
)

var (
	GroqAPIKey         string
	GroqModel          string
	TelegramBotKey     string
	WebhookSecretToken string
	BaseURL            string
	APISecretKey       string

	// PendingActionTTL — jendela konfirmasi pending action.
	PendingActionTTL = 5 * time.Minute
)

// botDisabled — feature flag "bot sedang down". Di-set lewat env BOT_DISABLED
// saat LoadEnv/Reload, bukan variabel modul yang dimutasi sembarang tempat.
var botDisabled atomic.Bool

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	Reload()
}

// Reload membaca ulang semua setting dari environment (dipakai juga untuk
// toggle flag tanpa restart proses).
func Reload() {
	GroqAPIKey = GetEnv("GROQ_API_KEY")
	GroqModel = GetEnv("GROQ_MODEL", "openai/gpt-oss-120b")
	TelegramBotKey = GetEnv("TELEGRAM_BOT_KEY")
	WebhookSecretToken = GetEnv("WEBHOOK_SECRET_TOKEN")
	BaseURL = GetEnv("BASE_URL")
	APISecretKey = GetEnv("API_SECRET_KEY")

	botDisabled.Store(strings.EqualFold(GetEnv("BOT_DISABLED"), "true"))

	for _, kv := range []struct{ key, val string }{
		{"GROQ_API_KEY", GroqAPIKey},
		{"TELEGRAM_BOT_KEY", TelegramBotKey},
		{"WEBHOOK_SECRET_TOKEN", WebhookSecretToken},
		{"API_SECRET_KEY", APISecretKey},
	} {
		if kv.val == "" {
			log.Printf("❌ %s belum diset!", kv.key)
		} else {
			log.Printf("✅ %s berhasil dimuat.", kv.key)
		}
	}
}

// IsBotDisabled — true kalau bot sedang dimatikan sementara.
func IsBotDisabled() bool {
	return botDisabled.Load()
}

// SetBotDisabled mengubah flag secara eksplisit (dipakai endpoint admin & test).
func SetBotDisabled(v bool) {
	botDisabled.Store(v)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
