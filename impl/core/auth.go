package core

import (
	"github.com/google/uuid"

	"chatguru/entity"
)

// AuthenticateByToken resolves a bearer token to its owner. The static
// listen key authenticates as "admin"; generated keys as their user.
func (c *Core) AuthenticateByToken(token string) (*entity.UserAuth, error) {
	if token == "" {
		return nil, entity.ValidationError("empty token", nil)
	}
	if c.authKey != "" && token == c.authKey {
		return &entity.UserAuth{Username: "admin", Token: token}, nil
	}

	c.keysMu.RLock()
	username, ok := c.keys[token]
	c.keysMu.RUnlock()

	if !ok {
		return nil, entity.ValidationError("unknown token", nil)
	}
	return &entity.UserAuth{Username: username, Token: token}, nil
}

// ValidateToken adapts token auth for the ws upgrade path, where the
// token travels as a query parameter instead of a header.
func (c *Core) ValidateToken(token string) (string, error) {
	user, err := c.AuthenticateByToken(token)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// GenerateApiKey mints a key for username and registers it for token
// auth.
func (c *Core) GenerateApiKey(username string) (string, error) {
	if username == "" {
		return "", entity.ValidationError("username is required", nil)
	}

	apiKey := uuid.NewString()

	c.keysMu.Lock()
	c.keys[apiKey] = username
	c.keysMu.Unlock()

	return apiKey, nil
}
