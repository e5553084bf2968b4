package messages

import "chatguru/entity"

type Core interface {
	RecentMessages(limit int) []entity.MessageState
}
