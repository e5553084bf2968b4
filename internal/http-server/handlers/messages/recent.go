package messages

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"chatguru/internal/lib/api/response"
)

const defaultLimit = 50

func Recent(_ *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("Invalid limit"))
				return
			}
			limit = parsed
		}

		render.JSON(w, r, response.Ok(handler.RecentMessages(limit)))
	}
}
