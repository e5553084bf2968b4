// Package bot holds the Telegram alert bot that receives escalated log
// records.
package bot

import (
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"

	"chatguru/internal/lib/sl"
)

// AlertBot pushes operational alerts to the admin chat. The flow is
// one-way; it never polls for updates.
type AlertBot struct {
	log         *slog.Logger
	api         *tgbotapi.Bot
	botUsername string
	adminId     int64
}

func NewAlertBot(botName, apiKey string, adminId int64, log *slog.Logger) (*AlertBot, error) {
	alertBot := &AlertBot{
		log:         log.With(sl.Module("alertbot")),
		adminId:     adminId,
		botUsername: botName,
	}

	api, err := tgbotapi.NewBot(apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("creating api instance: %v", err)
	}
	alertBot.api = api

	return alertBot, nil
}

// SendMessage delivers one alert to the admin chat. It satisfies
// logger.Notifier.
func (t *AlertBot) SendMessage(msg string) {
	t.plainResponse(t.adminId, msg)
}

func (t *AlertBot) plainResponse(chatId int64, text string) {
	sanitized := sanitize(text)

	if sanitized == "" {
		t.log.With(
			slog.Int64("id", chatId),
		).Debug("empty message")
		return
	}

	_, err := t.api.SendMessage(chatId, sanitized, &tgbotapi.SendMessageOpts{
		ParseMode: "MarkdownV2",
	})
	if err != nil {
		t.log.With(
			slog.Int64("id", chatId),
		).Warn("sending message", sl.Err(err))

		// MarkdownV2 rejections fall back to plain text
		_, err = t.api.SendMessage(chatId, sanitized, &tgbotapi.SendMessageOpts{})
		if err != nil {
			t.log.With(
				slog.Int64("id", chatId),
			).Error("sending safe message", sl.Err(err))
		}
	}
}

// sanitize escapes MarkdownV2 reserved characters.
func sanitize(input string) string {
	const reservedChars = "\\`_{}#+-.!|()[]"

	var b strings.Builder
	b.Grow(len(input))
	for _, char := range input {
		if strings.ContainsRune(reservedChars, char) {
			b.WriteString("\\")
		}
		b.WriteRune(char)
	}
	return b.String()
}
