package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"chatguru/entity"
)

// Event is one WebSocket event pushed to operator consoles.
type Event struct {
	Type string `json:"type"` // "webhook_received", "notification_sent"
	Data any    `json:"data"`
}

// Hub maintains the set of active WebSocket clients and broadcasts
// message-state events to them.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	log        *slog.Logger
}

// NewHub creates a new Hub instance.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// Run starts the hub's event loop. Should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			h.mu.Lock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					// client stopped draining, drop it
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastWebhook pushes the state tracked for an inbound webhook to all
// connected consoles.
func (h *Hub) BroadcastWebhook(state entity.MessageState) {
	h.broadcast <- &Event{
		Type: "webhook_received",
		Data: state,
	}
}

// BroadcastNotification pushes the state tracked for an outbound delivery
// to all connected consoles.
func (h *Hub) BroadcastNotification(state entity.MessageState) {
	h.broadcast <- &Event{
		Type: "notification_sent",
		Data: state,
	}
}
