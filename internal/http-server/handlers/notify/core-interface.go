package notify

import "context"

type Core interface {
	AddAnnotation(ctx context.Context, chatID, phone, text string) error
	SendConfirmationMessage(ctx context.Context, phone, phoneID, text string) error
}
