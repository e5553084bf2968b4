package entity

import (
	"chatguru/internal/lib/validate"
	"net/http"
)

// KeyRequest asks for a new API key, minted for the named consumer.
type KeyRequest struct {
	Username string `json:"username" validate:"required"`
}

func (k *KeyRequest) Bind(_ *http.Request) error {
	return validate.Struct(k)
}
