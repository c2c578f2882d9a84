package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"memory-mob/internal/model"
	"memory-mob/internal/reminder"
	"memory-mob/internal/voice"
	"memory-mob/pkg/audio"
	pkgResponse "memory-mob/pkg/response"
	pkgTelegram "memory-mob/pkg/telegram"
)

const (
	channelTelegram  = "telegram"
	defaultVoiceMIME = "audio/ogg"

	helpText = "Lähetä minulle ääniviesti tai tekstiviesti, esimerkiksi \"Muista ostaa maitoa huomenna puoli kaksi\", niin tallennan siitä muistutuksen.\n\n" +
		"Jos päivää ei mainita, muistutus on tänään. Jos aikaa ei mainita, muistutus on klo 21.00.\n\n" +
		"/list näyttää tulevat muistutukset."
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine; transcription plus extraction can outlast Telegram's
// webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message

	go func() {
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, errorMessage(err))
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID

	if v := voiceOf(msg); v != nil {
		return h.handleVoice(ctx, chatID, v)
	}

	text := strings.TrimSpace(msg.Text)
	switch {
	case text == "":
		return nil
	case text == "/start" || text == "/help":
		return h.bot.SendMessage(ctx, chatID, helpText)
	case text == "/list":
		return h.handleList(ctx, chatID)
	case strings.HasPrefix(text, "/"):
		return h.bot.SendMessage(ctx, chatID, "Tuntematon komento. "+helpText)
	}

	return h.handleText(ctx, chatID, text)
}

func (h *handler) handleVoice(ctx context.Context, chatID int64, v *pkgTelegram.Voice) error {
	f, err := h.bot.GetFile(ctx, v.FileID)
	if err != nil {
		return err
	}
	data, err := h.bot.DownloadFile(ctx, f)
	if err != nil {
		return err
	}

	contentType := v.MimeType
	if contentType == "" {
		contentType = defaultVoiceMIME
	}

	out, err := h.voice.Process(ctx, voice.ProcessInput{
		Clip: audio.Clip{Data: data, ContentType: contentType},
		Mode: voice.ModeExtract,
	})
	if err != nil {
		return err
	}
	return h.create(ctx, chatID, out.Draft)
}

func (h *handler) handleText(ctx context.Context, chatID int64, text string) error {
	ext, err := h.voice.Extract(ctx, text, h.zone.Today())
	if err != nil {
		return err
	}
	return h.create(ctx, chatID, voice.Merge(voice.Draft{}, text, &ext, voice.ModeExtract))
}

func (h *handler) create(ctx context.Context, chatID int64, d voice.Draft) error {
	out, err := h.reminders.Create(ctx, reminder.CreateInput{
		Message: d.Message,
		Date:    d.Date,
		Time:    d.Time,
		ChatID:  strconv.FormatInt(chatID, 10),
	})
	if err != nil {
		return err
	}
	h.metrics.IncRemindersCreated(channelTelegram)

	rm := out.Reminder
	reply := fmt.Sprintf("✅ Muistutus tallennettu\n\n%s\n🕘 %s", rm.Message, h.zone.FormatDisplay(rm.ReminderTime, h.locale))
	return h.bot.SendMessage(ctx, chatID, reply)
}

func (h *handler) handleList(ctx context.Context, chatID int64) error {
	out, err := h.reminders.List(ctx, reminder.ListInput{Filter: reminder.FilterPending})
	if err != nil {
		return err
	}

	id := strconv.FormatInt(chatID, 10)
	var sb strings.Builder
	n := 0
	for _, rm := range out.Reminders {
		if rm.ChatID != id || rm.Status != model.StatusPending {
			continue
		}
		n++
		fmt.Fprintf(&sb, "%d. %s, %s\n", n, rm.Message, h.zone.FormatDisplay(rm.ReminderTime, h.locale))
	}
	if n == 0 {
		return h.bot.SendMessage(ctx, chatID, "Ei tulevia muistutuksia.")
	}
	return h.bot.SendMessage(ctx, chatID, "Tulevat muistutukset:\n\n"+sb.String())
}

func voiceOf(msg *pkgTelegram.Message) *pkgTelegram.Voice {
	if msg.Voice != nil {
		return msg.Voice
	}
	return msg.Audio
}
