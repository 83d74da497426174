// Package notify pushes due-task digests to an operations chat.
package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Telegram sends digest messages to a fixed chat. It is push-only: the
// dashboard UI is the interactive surface, this channel just alerts.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
	log    zerolog.Logger
}

func NewTelegram(token string, chatID int64, log zerolog.Logger) (*Telegram, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram init: %w", err)
	}
	return &Telegram{api: api, chatID: chatID, log: log}, nil
}

// SendDigest delivers one HTML-formatted digest. Empty digests are skipped.
func (t *Telegram) SendDigest(text string) error {
	if text == "" {
		return nil
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true
	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	t.log.Debug().Int64("chat", t.chatID).Msg("digest sent")
	return nil
}
