package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/eventboard/eventboard/internal/config"
	"github.com/eventboard/eventboard/internal/metrics"
	"github.com/eventboard/eventboard/internal/transport/rest/handlers"
	"github.com/eventboard/eventboard/internal/transport/rest/middleware"
)

func New(
	events *handlers.EventsHandler,
	requests *handlers.RequestsHandler,
	health *handlers.HealthHandler,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog)

	if cfg.RLEnabled {
		r.Use(httprate.Limit(
			cfg.RLLimit,
			cfg.RLWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
		))
	}

	r.Get("/healthz", health.Healthz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Get("/events", events.ListPublic)
	r.Get("/events/{eventID}", events.GetPublic)

	r.Route("/admin/events", func(r chi.Router) {
		r.Get("/", events.ListAdmin)
		r.Patch("/{eventID}", events.UpdateAdmin)
	})

	r.Route("/users/{userID}", func(r chi.Router) {
		r.Route("/events", func(r chi.Router) {
			r.Post("/", events.Create)
			r.Get("/", events.ListMine)
			r.Get("/{eventID}", events.GetMine)
			r.Patch("/{eventID}", events.UpdateMine)

			r.Get("/{eventID}/requests", requests.ListForEvent)
			r.Patch("/{eventID}/requests", requests.BulkUpdate)
		})

		r.Route("/requests", func(r chi.Router) {
			r.Post("/", requests.Create)
			r.Get("/", requests.ListMine)
			r.Patch("/{requestID}/cancel", requests.Cancel)
		})
	})

	return r
}
