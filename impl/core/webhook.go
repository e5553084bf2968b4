package core

import (
	"log/slog"
	"time"

	"chatguru/entity"
	"chatguru/internal/lib/sl"
)

// ProcessWebhook resolves a raw webhook body, normalizes media fields and
// records the canonical facts for the recent-messages view. The resolved
// payload comes back so callers can act on it; the error is only ever a
// resolution failure.
func (c *Core) ProcessWebhook(raw []byte) (*entity.WebhookPayload, error) {
	payload, err := entity.ResolveWebhook(raw)
	if err != nil {
		c.log.With(
			sl.Err(err),
		).Error("resolve webhook payload")
		return nil, err
	}

	if p, ok := payload.ChatGuru(); ok {
		p.NormalizeMediaFields()
	}

	state := entity.MessageState{
		Variant:     payload.Variant(),
		ContactName: payload.ContactName(),
		Timestamp:   time.Now().UTC(),
	}
	if phone, ok := payload.PhoneNumber(); ok {
		state.Phone = phone
	}
	if chatID, ok := payload.ChatID(); ok {
		state.ChatID = chatID
	}
	if text, ok := payload.MessageText(); ok {
		state.Annotation = text
	}
	if url, ok := payload.MediaURL(); ok {
		state.MediaURL = url
	}
	if mediaType, ok := payload.MediaType(); ok {
		state.MediaType = mediaType
	}

	state.Fingerprint = c.states.Track(state)

	if c.hub != nil {
		c.hub.BroadcastWebhook(state)
	}

	c.log.With(
		slog.String("variant", string(state.Variant)),
		slog.String("contact", state.ContactName),
		slog.String("phone", state.Phone),
	).Info("webhook processed")

	return payload, nil
}
