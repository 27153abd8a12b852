package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/selivandex/sentiment-compass/internal/phase"
	"github.com/selivandex/sentiment-compass/pkg/logger"
)

// Notifier pushes phase diagnoses to a Telegram chat. It is one concrete
// display surface; the core only hands it display-shaped data.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier creates new Telegram notifier
func NewNotifier(botToken string, chatID int64) (*Notifier, error) {
	if botToken == "" {
		return nil, fmt.Errorf("telegram bot token is required")
	}

	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot API: %w", err)
	}

	bot.Debug = false

	logger.Info("telegram notifier initialized",
		zap.String("bot_username", bot.Self.UserName),
	)

	return &Notifier{
		api:    bot,
		chatID: chatID,
	}, nil
}

// SendPhaseAlert sends a one-line diagnosis summary for a topic
func (n *Notifier) SendPhaseAlert(topic string, d phase.Diagnosis) error {
	text := fmt.Sprintf("%s *%s* — %s\nM=%.4f  χ=%.4f\n%s",
		regimeEmoji(d.Regime),
		escapeMarkdown(topic),
		d.Regime,
		d.Magnetization,
		d.Susceptibility,
		escapeMarkdown(d.Narrative),
	)

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send phase alert: %w", err)
	}

	logger.Debug("phase alert sent",
		zap.String("topic", topic),
		zap.String("regime", string(d.Regime)),
	)

	return nil
}

func regimeEmoji(r phase.Regime) string {
	switch r {
	case phase.Critical:
		return "⚠️"
	case phase.Ordered:
		return "🧲"
	default:
		return "🌫"
	}
}

var markdownEscaper = strings.NewReplacer(
	"*", "\\*",
	"_", "\\_",
	"`", "\\`",
	"[", "\\[",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
