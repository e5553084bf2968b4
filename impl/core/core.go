package core

import (
	"context"
	"log/slog"
	"sync"

	"chatguru/entity"
	"chatguru/internal/lib/sl"
)

// Sender delivers notifications to the ChatGuru API.
type Sender interface {
	AddAnnotation(ctx context.Context, chatID, phone, text string) error
	SendConfirmationMessage(ctx context.Context, phone, phoneID, text string) error
}

// Hub pushes domain events to connected operator consoles.
type Hub interface {
	BroadcastWebhook(state entity.MessageState)
	BroadcastNotification(state entity.MessageState)
}

type Core struct {
	sender  Sender
	hub     Hub
	states  *MessageStore
	authKey string
	keys    map[string]string
	keysMu  sync.RWMutex
	log     *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log:    log.With(sl.Module("core")),
		keys:   make(map[string]string),
		states: NewMessageStore(),
	}
}

func (c *Core) SetSender(sender Sender) {
	c.sender = sender
}

func (c *Core) SetHub(hub Hub) {
	c.hub = hub
}

func (c *Core) SetAuthKey(key string) {
	c.authKey = key
}
