package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter mounts the API routes and the global middleware stack.
func NewRouter(h *EventHandler, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logger(logger))
	r.Use(CORS)

	r.Get("/health", HealthCheck)

	r.Route("/events", func(r chi.Router) {
		r.Post("/", h.CreateEvent)
		r.Get("/", h.ListEvents)
		r.Get("/{id}", h.GetEvent)
		r.Post("/{id}/participants", h.AddParticipant)
		r.Get("/{id}/participants", h.ListEventParticipants)
	})
	r.Get("/participants", h.ListParticipants)

	return r
}
