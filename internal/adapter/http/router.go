package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/savingsgl/internal/adapter/http/handler"
	"github.com/iho/savingsgl/internal/adapter/http/middleware"
	"github.com/iho/savingsgl/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	HealthHandler *handler.HealthHandler
	LedgerHandler *handler.LedgerHandler
	Metrics       *metrics.Metrics
	Logger        zerolog.Logger

	// Gatherer backs /metrics; defaults to the global registry.
	Gatherer prometheus.Gatherer
}

// NewRouter creates the worker's HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	if cfg.LedgerHandler != nil {
		r.Route("/v1", func(r chi.Router) {
			r.Get("/groups/{id}", cfg.LedgerHandler.GetGroup)
			r.Get("/fee-splits/{externalID}", cfg.LedgerHandler.ListFeeSplits)
		})
	}

	return r
}
