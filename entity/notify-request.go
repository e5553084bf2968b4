package entity

import (
	"chatguru/internal/lib/validate"
	"net/http"
)

// AnnotationRequest asks for a note on an existing ChatGuru chat.
type AnnotationRequest struct {
	ChatID string `json:"chat_id" validate:"omitempty"`
	Phone  string `json:"phone" validate:"required"`
	Text   string `json:"text" validate:"required"`
}

func (a *AnnotationRequest) Bind(_ *http.Request) error {
	return validate.Struct(a)
}

// ConfirmationRequest asks for a message to a contact's WhatsApp number.
// PhoneID overrides the configured sending line when set.
type ConfirmationRequest struct {
	Phone   string `json:"phone" validate:"required"`
	PhoneID string `json:"phone_id" validate:"omitempty"`
	Text    string `json:"text" validate:"required"`
}

func (c *ConfirmationRequest) Bind(_ *http.Request) error {
	return validate.Struct(c)
}
