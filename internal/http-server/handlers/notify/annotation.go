package notify

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"chatguru/entity"
	"chatguru/internal/lib/api/response"
	"chatguru/internal/lib/sl"
)

func AddAnnotation(log *slog.Logger, handler Core) http.HandlerFunc {
	mod := sl.Module("http.handlers.notify")

	return func(w http.ResponseWriter, r *http.Request) {
		var req entity.AnnotationRequest
		if err := render.Bind(r, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if err := handler.AddAnnotation(r.Context(), req.ChatID, req.Phone, req.Text); err != nil {
			log.With(mod, sl.Err(err)).Error("add annotation")
			render.Status(r, statusFor(err))
			render.JSON(w, r, response.Error("Failed to add annotation"))
			return
		}

		render.JSON(w, r, response.Ok("annotation sent"))
	}
}

// statusFor translates error kinds for API callers: their own bad input
// is 400, an unreachable ChatGuru API is 502, everything else 500.
func statusFor(err error) int {
	kind, ok := entity.KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch kind {
	case entity.ErrValidation:
		return http.StatusBadRequest
	case entity.ErrNetwork:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
