package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
)

// TelegramAlerter pushes operator alerts to an ops chat. With no bot token
// configured it stays constructible and silently drops alerts.
type TelegramAlerter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramAlerter(token string, chatID int64, logger logger.Logger) (*TelegramAlerter, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, operator alerts disabled")
		return &TelegramAlerter{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAlerter{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramAlerter) WebhookDropped(ctx context.Context, partnerID string, eventType domain.WebhookEventType, lastError string) {
	text := fmt.Sprintf(
		"*Webhook delivery dropped*\n\n"+"Partner: %s\n"+"Event: %s\n"+"Last error: %s",
		partnerID, eventType, lastError,
	)
	n.send(ctx, text)
}

func (n *TelegramAlerter) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("operator alert skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("operator alert skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("operator alert skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send operator alert",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
