package core

import (
	"context"

	"chatguru/entity"
)

// AddAnnotation delivers a note to the chat belonging to phone and tracks
// the delivery. Application-level rejections are absorbed inside the
// sender, so an error here means the API was unreachable or the input was
// unusable.
func (c *Core) AddAnnotation(ctx context.Context, chatID, phone, text string) error {
	if c.sender == nil {
		return entity.InternalError("sender service is not set", nil)
	}

	if err := c.sender.AddAnnotation(ctx, chatID, phone, text); err != nil {
		return err
	}

	c.trackOutbound(entity.MessageState{
		Phone:      phone,
		ChatID:     chatID,
		Annotation: text,
	})
	return nil
}

// SendConfirmationMessage delivers a WhatsApp message to phone and tracks
// the delivery.
func (c *Core) SendConfirmationMessage(ctx context.Context, phone, phoneID, text string) error {
	if c.sender == nil {
		return entity.InternalError("sender service is not set", nil)
	}

	if err := c.sender.SendConfirmationMessage(ctx, phone, phoneID, text); err != nil {
		return err
	}

	c.trackOutbound(entity.MessageState{
		Phone:      phone,
		Annotation: text,
	})
	return nil
}

// trackOutbound records a delivered notification: tracked first, then
// flagged sent, so the broadcast carries the state as the store holds it.
func (c *Core) trackOutbound(state entity.MessageState) {
	fingerprint := c.states.Track(state)
	c.states.MarkSent(fingerprint)

	if c.hub == nil {
		return
	}
	if sent, ok := c.states.Get(fingerprint); ok {
		c.hub.BroadcastNotification(sent)
	}
}

// RecentMessages returns the latest tracked states, newest first.
func (c *Core) RecentMessages(limit int) []entity.MessageState {
	return c.states.Recent(limit)
}
