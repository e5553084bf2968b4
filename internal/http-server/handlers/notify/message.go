package notify

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"chatguru/entity"
	"chatguru/internal/lib/api/response"
	"chatguru/internal/lib/sl"
)

func SendMessage(log *slog.Logger, handler Core) http.HandlerFunc {
	mod := sl.Module("http.handlers.notify")

	return func(w http.ResponseWriter, r *http.Request) {
		var req entity.ConfirmationRequest
		if err := render.Bind(r, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if err := handler.SendConfirmationMessage(r.Context(), req.Phone, req.PhoneID, req.Text); err != nil {
			log.With(mod, sl.Err(err)).Error("send confirmation message")
			render.Status(r, statusFor(err))
			render.JSON(w, r, response.Error("Failed to send message"))
			return
		}

		render.JSON(w, r, response.Ok("message sent"))
	}
}
