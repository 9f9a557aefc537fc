package notification

import (
	"context"
	"fmt"

	pkgTelegram "chief-of-staff-api/pkg/telegram"
)

// TelegramSender delivers notifications as Telegram messages. Payloads
// carrying a task id get inline Approve/Reject buttons whose callback
// data the webhook handler turns back into queue transitions.
type TelegramSender struct {
	bot    *pkgTelegram.Bot
	chatID int64
}

// NewTelegramSender creates a Telegram-backed sender for one chat.
func NewTelegramSender(bot *pkgTelegram.Bot, chatID int64) *TelegramSender {
	return &TelegramSender{bot: bot, chatID: chatID}
}

var _ Sender = (*TelegramSender)(nil)

func (s *TelegramSender) Name() string { return "telegram" }

func (s *TelegramSender) Send(ctx context.Context, payload Payload) error {
	text := fmt.Sprintf("*%s*\n\n%s", payload.Title, payload.Body)

	if taskID := payload.Data.TaskID; taskID != "" {
		keyboard := [][]pkgTelegram.InlineKeyboardButton{{
			{Text: "✅ Approve", CallbackData: "approve:" + taskID},
			{Text: "❌ Reject", CallbackData: "reject:" + taskID},
		}}
		return s.bot.SendMessageWithKeyboard(s.chatID, text, "Markdown", keyboard)
	}

	return s.bot.SendMessageWithMode(s.chatID, text, "Markdown")
}
