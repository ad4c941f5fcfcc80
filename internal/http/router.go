package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/http/handlers"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/http/middleware"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/metrics"
)

// RouterConfig carries the cross-cutting pieces of the router.
type RouterConfig struct {
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	CORSOrigins []string
}

// NewRouter registers the API routes behind logging, recovery and CORS.
func NewRouter(h *handlers.Handler, cfg RouterConfig) nethttp.Handler {
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(cfg.Logger, cfg.Metrics))
	r.Use(chimw.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodDelete, nethttp.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Route("/api", func(r chi.Router) {
		r.Get("/teams", h.Teams)
		r.Get("/subscriptions", h.Subscriptions)
		r.Post("/subscribe", h.Subscribe)
		r.Delete("/subscribe/{id}", h.Unsubscribe)
		r.Post("/test", h.SendTest)
		r.Get("/health", h.Health)
		r.Get("/debug", h.Debug)
	})
	return r
}
