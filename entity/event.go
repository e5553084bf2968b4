package entity

import (
	"encoding/json"
)

// EventPayload is the legacy envelope format: a typed header around an
// open-ended data object. Older ChatGuru installations still emit it for
// CRM-style events (lead captured, deal closed, payment received).
type EventPayload struct {
	ID        string    `json:"id"`
	EventType string    `json:"event_type"`
	Timestamp string    `json:"timestamp"`
	Data      EventData `json:"data"`
}

// EventData is the legacy event body. Every field is optional; keys that
// are not part of the documented set are kept verbatim in Extra so nothing
// the platform sends is lost.
type EventData struct {
	LeadName    string         `json:"lead_name,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	Email       string         `json:"email,omitempty"`
	ProjectName string         `json:"project_name,omitempty"`
	TaskTitle   string         `json:"task_title,omitempty"`
	Annotation  string         `json:"annotation,omitempty"`
	Amount      *float64       `json:"amount,omitempty"`
	Status      string         `json:"status,omitempty"`
	CustomData  map[string]any `json:"custom_data,omitempty"`

	Extra map[string]any `json:"-"`
}

func (d *EventData) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for key, raw := range fields {
		switch key {
		case "lead_name":
			d.LeadName = stringValue(raw)
		case "phone":
			d.Phone = stringValue(raw)
		case "email":
			d.Email = stringValue(raw)
		case "project_name":
			d.ProjectName = stringValue(raw)
		case "task_title":
			d.TaskTitle = stringValue(raw)
		case "annotation":
			d.Annotation = stringValue(raw)
		case "amount":
			var amount float64
			if err := json.Unmarshal(raw, &amount); err == nil {
				d.Amount = &amount
			}
		case "status":
			d.Status = stringValue(raw)
		case "custom_data":
			var custom map[string]any
			if err := json.Unmarshal(raw, &custom); err == nil {
				d.CustomData = custom
			}
		default:
			if d.Extra == nil {
				d.Extra = make(map[string]any)
			}
			var value any
			if err := json.Unmarshal(raw, &value); err != nil {
				return err
			}
			d.Extra[key] = value
		}
	}
	return nil
}

// MarshalJSON writes the documented fields and the captured extras back as
// one flat object, mirroring the wire shape the payload arrived in.
func (d EventData) MarshalJSON() ([]byte, error) {
	type plain EventData
	flat, err := json.Marshal(plain(d))
	if err != nil {
		return nil, err
	}
	if len(d.Extra) == 0 {
		return flat, nil
	}
	merged := make(map[string]any, len(d.Extra)+8)
	if err := json.Unmarshal(flat, &merged); err != nil {
		return nil, err
	}
	for key, value := range d.Extra {
		merged[key] = value
	}
	return json.Marshal(merged)
}

// stringValue decodes raw as a JSON string, returning "" on any mismatch.
// Legacy senders occasionally mistype optional fields; dropping the value
// beats rejecting the whole event.
func stringValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
