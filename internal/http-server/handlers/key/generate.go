package key

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"chatguru/entity"
	"chatguru/internal/lib/api/response"
	"chatguru/internal/lib/sl"
)

// Generate mints an API key for a downstream consumer, so the pipeline
// and the operator consoles do not have to share the admin key.
func Generate(log *slog.Logger, handler Core) http.HandlerFunc {
	mod := sl.Module("http.handlers.key")

	return func(w http.ResponseWriter, r *http.Request) {
		var req entity.KeyRequest
		if err := render.Bind(r, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		apiKey, err := handler.GenerateApiKey(req.Username)
		if err != nil {
			log.With(mod, sl.Err(err)).Error("generate api key")
			status := http.StatusInternalServerError
			if kind, ok := entity.KindOf(err); ok && kind == entity.ErrValidation {
				status = http.StatusBadRequest
			}
			render.Status(r, status)
			render.JSON(w, r, response.Error("Failed to generate key"))
			return
		}

		log.With(mod, slog.String("username", req.Username)).Info("api key generated")
		render.JSON(w, r, response.Ok(entity.UserAuth{Username: req.Username, Token: apiKey}))
	}
}
