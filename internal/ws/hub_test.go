package ws

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"chatguru/entity"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHub_BroadcastsToRegisteredClients(t *testing.T) {
	hub := NewHub(discardLogger())
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 4), username: "ops"}
	hub.register <- client

	hub.BroadcastWebhook(entity.MessageState{Fingerprint: "fp-1", Phone: "5511999999999"})

	select {
	case raw := <-client.send:
		var event struct {
			Type string              `json:"type"`
			Data entity.MessageState `json:"data"`
		}
		if err := json.Unmarshal(raw, &event); err != nil {
			t.Fatalf("bad event payload: %v", err)
		}
		if event.Type != "webhook_received" {
			t.Errorf("got type %q, want webhook_received", event.Type)
		}
		if event.Data.Fingerprint != "fp-1" {
			t.Errorf("got fingerprint %q, want fp-1", event.Data.Fingerprint)
		}
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestHub_UnregisterClosesSend(t *testing.T) {
	hub := NewHub(discardLogger())
	go hub.Run()

	client := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.register <- client
	hub.unregister <- client

	select {
	case _, ok := <-client.send:
		if ok {
			t.Fatal("expected a closed channel")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}
}

type fakeAuth struct{}

func (fakeAuth) ValidateToken(token string) (string, error) {
	if token == "good" {
		return "ops", nil
	}
	return "", errors.New("unknown token")
}

func TestServeWs_RejectsBadTokens(t *testing.T) {
	hub := NewHub(discardLogger())
	go hub.Run()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, fakeAuth{}, discardLogger(), w, r)
	}))
	defer srv.Close()

	for _, url := range []string{srv.URL, srv.URL + "?token=wrong"} {
		resp, err := http.Get(url)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("got status %d for %q, want 401", resp.StatusCode, url)
		}
	}
}

func TestServeWs_DeliversEvents(t *testing.T) {
	hub := NewHub(discardLogger())
	go hub.Run()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, fakeAuth{}, discardLogger(), w, r)
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "?token=good"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	defer conn.Close()

	// the handler registers the client right after the handshake; wait
	// for it before broadcasting
	deadline := time.Now().Add(time.Second)
	for {
		hub.mu.RLock()
		n := len(hub.clients)
		hub.mu.RUnlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	hub.BroadcastNotification(entity.MessageState{Fingerprint: "fp-2", Sent: true})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	var event struct {
		Type string              `json:"type"`
		Data entity.MessageState `json:"data"`
	}
	if err := json.Unmarshal(raw, &event); err != nil {
		t.Fatalf("bad event payload: %v", err)
	}
	if event.Type != "notification_sent" {
		t.Errorf("got type %q, want notification_sent", event.Type)
	}
	if !event.Data.Sent {
		t.Error("expected a sent state")
	}
}
