package notify

import (
	"context"
	"fmt"

	"classbook/internal/config"
	"classbook/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// TelegramSender is the narrow slice of the bot API the notifier needs.
type TelegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier announces booking activity to a configured chat.
// Delivery is best effort: failures are logged and never surface to
// the caller.
type TelegramNotifier struct {
	sender TelegramSender
	chatID int64
	logger *zerolog.Logger
}

// NewTelegramNotifier connects to the Telegram API. Returns (nil, nil)
// when no bot token is configured, so callers can pass the result
// straight through as a disabled notifier.
func NewTelegramNotifier(cfg config.TelegramConfig, logger *zerolog.Logger) (*TelegramNotifier, error) {
	if cfg.BotToken == "" {
		return nil, nil
	}
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("telegram init: %w", err)
	}
	logger.Info().Str("bot", bot.Self.UserName).Msg("telegram notifications enabled")
	return &TelegramNotifier{sender: bot, chatID: cfg.ChatID, logger: logger}, nil
}

func newWithSender(sender TelegramSender, chatID int64, logger *zerolog.Logger) *TelegramNotifier {
	return &TelegramNotifier{sender: sender, chatID: chatID, logger: logger}
}

func (n *TelegramNotifier) BookingCreated(_ context.Context, booking *models.Booking, roomName string) {
	text := fmt.Sprintf("📌 New booking\nRoom: %s\nBooked by: %s\nTime: %s\nDuration: %s",
		roomName, booking.BookerName, booking.StartTime, booking.Duration)
	n.send(text)
}

func (n *TelegramNotifier) BookingCanceled(_ context.Context, booking *models.Booking, canceledBy string) {
	text := fmt.Sprintf("❌ Booking canceled\nBooked by: %s\nTime: %s\nCanceled by: %s",
		booking.BookerName, booking.StartTime, canceledBy)
	n.send(text)
}

func (n *TelegramNotifier) send(text string) {
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.sender.Send(msg); err != nil {
		n.logger.Error().Err(err).Msg("telegram send failed")
	}
}
