package webhook

import "chatguru/entity"

type Core interface {
	ProcessWebhook(raw []byte) (*entity.WebhookPayload, error)
}
