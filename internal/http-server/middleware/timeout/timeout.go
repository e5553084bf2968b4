package timeout

import (
	"context"
	"net/http"
	"time"
)

// Timeout puts a deadline of the given number of seconds on the request
// context, so outbound calls started by a handler are cancelled with the
// request.
func Timeout(seconds int) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), time.Duration(seconds)*time.Second)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(fn)
	}
}
