package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"chatguru/internal/lib/api/response"
)

func Health(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.Ok(map[string]string{
			"service": "chatguru",
			"status":  "up",
		}))
	}
}
