package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"salon-ads/internal/core/port"
)

// Handler is the inbound HTTP adapter. It decodes requests, resolves the
// caller from gateway headers and delegates to the use cases.
type Handler struct {
	ads       port.AdUseCase
	targeting port.TargetingResolver
	logger    *slog.Logger
	maxBody   int64
	router    chi.Router
}

// Options tunes the handler.
type Options struct {
	// MaxBodyBytes caps request bodies, uploads included.
	MaxBodyBytes int64
	// Metrics is mounted at /metrics when set.
	Metrics http.Handler
}

// NewHandler creates a handler with all routes configured.
func NewHandler(ads port.AdUseCase, targeting port.TargetingResolver, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{ads: ads, targeting: targeting, logger: logger, maxBody: opts.MaxBodyBytes}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/ads", func(r chi.Router) {
			r.Post("/", h.handleCreateAd)
			r.Route("/{adID}", func(r chi.Router) {
				r.Get("/", h.handleGetAd)
				r.Patch("/", h.handleUpdateAd)
				r.Delete("/", h.handleDeleteAd)
				r.Put("/status", h.handleSetStatus)
				r.Get("/reach", h.handleReach)
			})
		})
		r.Get("/salons/{salonID}/ads", h.handleSalonAds)
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
