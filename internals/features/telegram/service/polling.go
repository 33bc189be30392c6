package service

import (
	"context"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// RunPolling menarik update lewat long polling; dipakai saat development
// lokal tanpa URL publik untuk webhook. Berhenti waktu ctx dibatalkan.
func RunPolling(ctx context.Context, sender *BotSender, conversation *ConversationService) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30

	updates := sender.Bot.GetUpdatesChan(cfg)
	log.Println("[TELEGRAM] Long polling aktif")

	for {
		select {
		case <-ctx.Done():
			sender.Bot.StopReceivingUpdates()
			log.Println("[TELEGRAM] Long polling berhenti")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.From == nil {
				continue
			}
			contactID := strconv.FormatInt(update.Message.From.ID, 10)
			conversation.ProcessMessage(ctx, update.Message.Chat.ID, contactID, update.Message.Text)
		}
	}
}
