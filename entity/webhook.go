package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Variant names the webhook shape a payload resolved to.
type Variant string

const (
	VariantChatGuru Variant = "chatguru"
	VariantEvent    Variant = "event"
	VariantGeneric  Variant = "generic"
)

// DefaultContactName is reported when a payload shape that allows an
// anonymous sender arrives without a name.
const DefaultContactName = "Contato"

// WebhookPayload is a resolved webhook body: exactly one of the three
// shapes, behind a uniform set of accessors so callers never branch on the
// variant themselves.
type WebhookPayload struct {
	variant  Variant
	chatguru *ChatGuruPayload
	event    *EventPayload
	generic  *GenericPayload
}

// chatGuruMarkers are top-level keys that only the native ChatGuru shape
// uses. Keys shared with the generic shape (nome, celular, email,
// mensagem) are deliberately absent: their presence alone must not pull a
// payload into the native variant.
var chatGuruMarkers = []string{
	"campanha_id",
	"campanha_nome",
	"origem",
	"tags",
	"texto_mensagem",
	"message",
	"text",
	"media_url",
	"media_type",
	"tipo_mensagem",
	"url_arquivo",
	"url_midia",
	"campos_personalizados",
	"bot_context",
	"responsavel_nome",
	"responsavel_email",
	"link_chat",
	"phone_id",
	"chat_id",
	"chat_created",
}

// ResolveWebhook decides which of the three shapes a raw webhook body is
// and decodes it. Shapes are tried most specific first: native ChatGuru
// when any marker key is present, then the legacy event envelope, then the
// generic catch-all. Ambiguous bodies carrying both native markers and a
// legacy envelope resolve to the native shape.
//
// Any JSON object resolves to something; only bodies that are not JSON
// objects fail, with ErrUnresolvablePayload in the error chain.
func ResolveWebhook(raw []byte) (*WebhookPayload, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, SerializationError("webhook body is not a JSON object",
			fmt.Errorf("%w: unexpected body %q", ErrUnresolvablePayload, preview(raw)))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, SerializationError("webhook body is not valid JSON",
			fmt.Errorf("%w: %w", ErrUnresolvablePayload, err))
	}

	if hasChatGuruMarker(fields) {
		var p ChatGuruPayload
		if err := json.Unmarshal(raw, &p); err == nil {
			return &WebhookPayload{variant: VariantChatGuru, chatguru: &p}, nil
		}
	}

	if legacyEventShape(fields) {
		var e EventPayload
		if err := json.Unmarshal(raw, &e); err == nil {
			return &WebhookPayload{variant: VariantEvent, event: &e}, nil
		}
	}

	var g GenericPayload
	if err := json.Unmarshal(raw, &g); err != nil {
		return nil, SerializationError("webhook body does not match any known shape",
			fmt.Errorf("%w: %w", ErrUnresolvablePayload, err))
	}
	return &WebhookPayload{variant: VariantGeneric, generic: &g}, nil
}

func hasChatGuruMarker(fields map[string]json.RawMessage) bool {
	for _, key := range chatGuruMarkers {
		if _, ok := fields[key]; ok {
			return true
		}
	}
	return false
}

// legacyEventShape reports whether the body carries the full legacy
// envelope: string id, event_type and timestamp plus an object data field.
func legacyEventShape(fields map[string]json.RawMessage) bool {
	for _, key := range []string{"id", "event_type", "timestamp"} {
		raw, ok := fields[key]
		if !ok || !isJSONString(raw) {
			return false
		}
	}
	data, ok := fields["data"]
	return ok && isJSONObject(data)
}

func isJSONString(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '"'
}

func isJSONObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func preview(raw []byte) string {
	const max = 64
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > max {
		return string(trimmed[:max]) + "..."
	}
	return string(trimmed)
}

// Variant reports which shape the payload resolved to.
func (w *WebhookPayload) Variant() Variant {
	return w.variant
}

// ChatGuru returns the native payload when that is the resolved shape.
func (w *WebhookPayload) ChatGuru() (*ChatGuruPayload, bool) {
	return w.chatguru, w.variant == VariantChatGuru
}

// Event returns the legacy event payload when that is the resolved shape.
func (w *WebhookPayload) Event() (*EventPayload, bool) {
	return w.event, w.variant == VariantEvent
}

// Generic returns the catch-all payload when that is the resolved shape.
func (w *WebhookPayload) Generic() (*GenericPayload, bool) {
	return w.generic, w.variant == VariantGeneric
}

// ContactName returns the sender's display name. The native shape reports
// its nome field as is; the other shapes fall back to DefaultContactName
// when no name arrived.
func (w *WebhookPayload) ContactName() string {
	switch w.variant {
	case VariantChatGuru:
		return w.chatguru.Nome
	case VariantEvent:
		if w.event.Data.LeadName != "" {
			return w.event.Data.LeadName
		}
		return DefaultContactName
	default:
		if w.generic.Nome != "" {
			return w.generic.Nome
		}
		return DefaultContactName
	}
}

// PhoneNumber returns the contact phone in whatever formatting it arrived.
func (w *WebhookPayload) PhoneNumber() (string, bool) {
	switch w.variant {
	case VariantChatGuru:
		if w.chatguru.Celular != "" {
			return w.chatguru.Celular, true
		}
	case VariantEvent:
		if w.event.Data.Phone != "" {
			return w.event.Data.Phone, true
		}
	default:
		if w.generic.Celular != "" {
			return w.generic.Celular, true
		}
	}
	return "", false
}

// MessageText returns the free-text body: the message for the native and
// generic shapes, the annotation for legacy events.
func (w *WebhookPayload) MessageText() (string, bool) {
	switch w.variant {
	case VariantChatGuru:
		if w.chatguru.TextoMensagem != "" {
			return w.chatguru.TextoMensagem, true
		}
	case VariantEvent:
		if w.event.Data.Annotation != "" {
			return w.event.Data.Annotation, true
		}
	default:
		if w.generic.Mensagem != "" {
			return w.generic.Mensagem, true
		}
	}
	return "", false
}

// ChatID returns the conversation identifier. Legacy events reuse their
// event id; the generic shape never carries one.
func (w *WebhookPayload) ChatID() (string, bool) {
	switch w.variant {
	case VariantChatGuru:
		if w.chatguru.ChatID != "" {
			return w.chatguru.ChatID, true
		}
	case VariantEvent:
		return w.event.ID, true
	}
	return "", false
}

// HasMedia reports whether the payload references an attachment. Only the
// native shape can carry media.
func (w *WebhookPayload) HasMedia() bool {
	if w.variant != VariantChatGuru {
		return false
	}
	return w.chatguru.MediaURL != "" || w.chatguru.URLArquivo != ""
}

// MediaURL returns the attachment URL, preferring the canonical field over
// the newer spelling.
func (w *WebhookPayload) MediaURL() (string, bool) {
	if w.variant != VariantChatGuru {
		return "", false
	}
	if w.chatguru.MediaURL != "" {
		return w.chatguru.MediaURL, true
	}
	if w.chatguru.URLArquivo != "" {
		return w.chatguru.URLArquivo, true
	}
	return "", false
}

// MediaType returns the attachment MIME type, deriving one from the
// message kind when only that is present.
func (w *WebhookPayload) MediaType() (string, bool) {
	if w.variant != VariantChatGuru {
		return "", false
	}
	if w.chatguru.MediaType != "" {
		return w.chatguru.MediaType, true
	}
	if w.chatguru.TipoMensagem != "" {
		return MediaTypeForKind(w.chatguru.TipoMensagem), true
	}
	return "", false
}
