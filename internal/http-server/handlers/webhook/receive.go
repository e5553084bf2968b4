package webhook

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"chatguru/internal/lib/api/response"
	"chatguru/internal/lib/sl"
)

// Receive terminates ChatGuru webhook deliveries. The platform retries
// anything but success, so every delivery is acknowledged with 200 and
// failures stay in the logs.
func Receive(log *slog.Logger, handler Core) http.HandlerFunc {
	mod := sl.Module("http.handlers.webhook")

	return func(w http.ResponseWriter, r *http.Request) {
		defer render.JSON(w, r, response.Ok("received"))

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.With(mod, sl.Err(err)).Error("read webhook body")
			return
		}

		// resolution failures are logged inside the core; the ack goes
		// out regardless
		_, _ = handler.ProcessWebhook(body)
	}
}
