package entity

import "time"

// MessageState is one tracked message: the canonical facts pulled from an
// inbound webhook, or an outbound notification once it went through.
type MessageState struct {
	Fingerprint string    `json:"fingerprint"`
	Variant     Variant   `json:"variant,omitempty"`
	ContactName string    `json:"contact_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	ChatID      string    `json:"chat_id,omitempty"`
	Annotation  string    `json:"annotation,omitempty"`
	MediaURL    string    `json:"media_url,omitempty"`
	MediaType   string    `json:"media_type,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Sent        bool      `json:"sent"`
}
