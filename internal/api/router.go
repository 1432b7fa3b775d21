package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a new HTTP router with all API endpoints.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(Recovery)
	r.Use(Logger)
	r.Use(CORS)
	r.Use(JSONContentType)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/prefixes", h.GetPrefixes)
		r.Get("/serial", h.GetSerial)
		r.Post("/refresh", h.Refresh)
	})

	// Health check endpoint at root
	r.Get("/health", h.CheckHealth)

	return r
}
