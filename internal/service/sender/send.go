package sender

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"chatguru/entity"
)

const (
	actionAnnotation = "note_add"
	actionMessage    = "message_send"
)

// notification describes one outbound ChatGuru API call. ChatGuru takes
// everything as query parameters on a bodiless POST.
type notification struct {
	action  string
	phone   string
	phoneID string
	text    string
}

// textParam names the query parameter carrying the free text, which
// differs per action.
func (n notification) textParam() string {
	if n.action == actionAnnotation {
		return "note_text"
	}
	return "text"
}

func (s *Service) requestURL(n notification) string {
	params := url.Values{}
	params.Set("key", s.apiToken)
	params.Set("account_id", s.accountID)
	params.Set("phone_id", n.phoneID)
	params.Set("action", n.action)
	params.Set(n.textParam(), n.text)
	params.Set("chat_number", CleanPhone(n.phone))
	return s.endpoint + "?" + params.Encode()
}

// AddAnnotation posts a note onto the chat belonging to phone. The chat
// id is context for the logs; ChatGuru addresses chats by phone number.
func (s *Service) AddAnnotation(ctx context.Context, chatID, phone, text string) error {
	if err := checkRecipient(phone, text); err != nil {
		return err
	}

	s.log.With(
		slog.String("chat_id", chatID),
		slog.String("phone", phone),
	).Info("adding annotation")

	return s.deliver(ctx, notification{
		action:  actionAnnotation,
		phone:   phone,
		phoneID: s.phoneID,
		text:    text,
	})
}

// SendConfirmationMessage sends a WhatsApp message to phone. An empty
// phoneID falls back to the configured sending line.
func (s *Service) SendConfirmationMessage(ctx context.Context, phone, phoneID, text string) error {
	if err := checkRecipient(phone, text); err != nil {
		return err
	}
	if phoneID == "" {
		phoneID = s.phoneID
	}

	s.log.With(
		slog.String("phone", phone),
	).Info("sending confirmation message")

	return s.deliver(ctx, notification{
		action:  actionMessage,
		phone:   phone,
		phoneID: phoneID,
		text:    text,
	})
}

func checkRecipient(phone, text string) error {
	if phone == "" {
		return entity.ValidationError("phone number is required", nil)
	}
	if text == "" {
		return entity.ValidationError("text is required", nil)
	}
	return nil
}

// deliver performs the call and applies the delivery policy: transport
// failures come back as network errors, application-level rejections are
// logged and absorbed so one dead chat never aborts a processing run.
func (s *Service) deliver(ctx context.Context, n notification) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.requestURL(n), nil)
	if err != nil {
		return entity.InternalError("create request", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return entity.NetworkError(fmt.Sprintf("%s request failed", n.action), err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	switch Classify(resp.StatusCode, string(body)) {
	case OutcomeChatNotFound:
		s.log.With(
			slog.String("phone", n.phone),
		).Warn("chat not found, skipping")
	case OutcomeAPIError:
		s.log.With(
			slog.String("action", n.action),
			slog.Int("status", resp.StatusCode),
			slog.String("response", string(body)),
		).Error("chatguru rejected request")
	default:
		s.log.With(
			slog.String("action", n.action),
			slog.String("phone", n.phone),
		).Info("delivered")
	}

	return nil
}
