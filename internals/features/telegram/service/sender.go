package service

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender — pengiriman pesan keluar ke satu chat. Interface supaya flow
// percakapan bisa dites tanpa bot sungguhan.
type Sender interface {
	Send(chatID int64, text string) error
}

// BotSender membungkus klien Bot API Telegram resmi plus operasi webhook.
type BotSender struct {
	Bot *tgbotapi.BotAPI
}

func NewBotSender(token string) (*BotSender, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram: bot token kosong")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: gagal inisialisasi bot: %w", err)
	}
	log.Printf("[TELEGRAM] Bot terhubung sebagai @%s", bot.Self.UserName)
	return &BotSender{Bot: bot}, nil
}

func (s *BotSender) Send(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := s.Bot.Send(msg); err != nil {
		return fmt.Errorf("telegram: gagal kirim pesan ke chat %d: %w", chatID, err)
	}
	return nil
}

// SetWebhook mendaftarkan URL webhook ke Telegram dengan secret token;
// Telegram akan mengirim balik token itu di header tiap update.
//
// WebhookConfig bawaan library belum mengenal field secret_token (baru ada
// di Bot API 6.0), jadi request dirakit manual lewat MakeRequest.
func (s *BotSender) SetWebhook(url, secretToken string) error {
	params := tgbotapi.Params{"url": url}
	if secretToken != "" {
		params["secret_token"] = secretToken
	}
	if _, err := s.Bot.MakeRequest("setWebhook", params); err != nil {
		return fmt.Errorf("telegram: gagal set webhook: %w", err)
	}
	return nil
}

func (s *BotSender) DeleteWebhook() error {
	if _, err := s.Bot.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("telegram: gagal hapus webhook: %w", err)
	}
	return nil
}
