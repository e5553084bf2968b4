package api

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"chatguru/internal/config"
	"chatguru/internal/http-server/handlers/errors"
	"chatguru/internal/http-server/handlers/health"
	"chatguru/internal/http-server/handlers/key"
	"chatguru/internal/http-server/handlers/messages"
	"chatguru/internal/http-server/handlers/notify"
	"chatguru/internal/http-server/handlers/webhook"
	"chatguru/internal/http-server/middleware/authenticate"
	"chatguru/internal/http-server/middleware/timeout"
	"chatguru/internal/lib/sl"
	"chatguru/internal/ws"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	webhook.Core
	notify.Core
	messages.Core
	key.Core
	ws.Authenticator
}

// New wires the router and serves until the listener fails. The webhook
// route stays outside the authenticated group: ChatGuru cannot send
// custom headers. Same for the ws route, which carries its token as a
// query parameter.
func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.With(timeout.Timeout(15)).Post("/webhooks/chatguru", webhook.Receive(log, handler))
	router.Get("/health", health.Health(log))
	router.Get("/ws/events", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(hub, handler, log, w, r)
	})

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(timeout.Timeout(15))
		v1.Use(authenticate.New(log, handler))

		v1.Route("/notify", func(r chi.Router) {
			r.Post("/annotation", notify.AddAnnotation(log, handler))
			r.Post("/message", notify.SendMessage(log, handler))
		})
		v1.Route("/messages", func(r chi.Router) {
			r.Get("/recent", messages.Recent(log, handler))
		})
		v1.Route("/key", func(r chi.Router) {
			r.Post("/new", key.Generate(log, handler))
		})
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
