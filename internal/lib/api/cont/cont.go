// Package cont puts request-scoped values on the context under unexported
// keys.
package cont

import (
	"context"

	"chatguru/entity"
)

type contextKey string

const userKey contextKey = "user"

// PutUser attaches the authenticated caller to the request context.
func PutUser(ctx context.Context, user *entity.UserAuth) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser returns the authenticated caller, or nil when the request never
// passed authentication.
func GetUser(ctx context.Context) *entity.UserAuth {
	user, ok := ctx.Value(userKey).(*entity.UserAuth)
	if !ok {
		return nil
	}
	return user
}
