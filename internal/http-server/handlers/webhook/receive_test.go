package webhook

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chatguru/entity"
	"chatguru/internal/lib/api/response"
)

type fakeCore struct {
	raws [][]byte
}

func (f *fakeCore) ProcessWebhook(raw []byte) (*entity.WebhookPayload, error) {
	f.raws = append(f.raws, raw)
	return entity.ResolveWebhook(raw)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReceive_AcknowledgesValidPayloads(t *testing.T) {
	core := &fakeCore{}
	h := Receive(discardLogger(), core)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/chatguru", strings.NewReader(`{"nome": "Ana", "mensagem": "oi"}`))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	var resp response.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Status != response.StatusOk {
		t.Errorf("got status %q, want %q", resp.Status, response.StatusOk)
	}

	if len(core.raws) != 1 {
		t.Fatalf("got %d processed bodies, want 1", len(core.raws))
	}
}

func TestReceive_AcknowledgesMalformedPayloads(t *testing.T) {
	core := &fakeCore{}
	h := Receive(discardLogger(), core)

	tests := []string{
		`[1, 2, 3]`,
		`not json at all`,
		``,
	}

	for _, body := range tests {
		req := httptest.NewRequest(http.MethodPost, "/webhooks/chatguru", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("body %q: got status %d, want 200", body, rec.Code)
		}
	}
}
