package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"memory-mob/internal/reminder"
	"memory-mob/internal/voice"
	"memory-mob/pkg/datemath"
	pkgLog "memory-mob/pkg/log"
	"memory-mob/pkg/metrics"
	pkgTelegram "memory-mob/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Bot is the part of the Bot API the handler talks to, normally *telegram.Bot.
type Bot interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	GetFile(ctx context.Context, fileID string) (pkgTelegram.File, error)
	DownloadFile(ctx context.Context, f pkgTelegram.File) ([]byte, error)
}

type handler struct {
	l         pkgLog.Logger
	reminders reminder.UseCase
	voice     voice.UseCase
	bot       Bot
	zone      *datemath.Zone
	locale    string
	metrics   *metrics.Metrics
}

// New creates a new Telegram delivery handler. Voice notes and text messages
// sent to the bot become reminders for the sending chat.
func New(
	l pkgLog.Logger,
	reminders reminder.UseCase,
	voiceUC voice.UseCase,
	bot Bot,
	zone *datemath.Zone,
	locale string,
	m *metrics.Metrics,
) Handler {
	if locale == "" {
		locale = datemath.DefaultLocale
	}
	return &handler{
		l:         l,
		reminders: reminders,
		voice:     voiceUC,
		bot:       bot,
		zone:      zone,
		locale:    locale,
		metrics:   m,
	}
}
