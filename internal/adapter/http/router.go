package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/hishabkitab/backend/internal/adapter/http/handler"
	"github.com/hishabkitab/backend/internal/adapter/http/middleware"
	"github.com/hishabkitab/backend/internal/infrastructure/metrics"
	"github.com/hishabkitab/backend/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CustomerHandler *handler.CustomerHandler
	LedgerHandler   *handler.LedgerHandler
	CashbookHandler *handler.CashbookHandler
	ProductHandler  *handler.ProductHandler
	HealthHandler   *handler.HealthHandler

	Logger         zerolog.Logger
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler

	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter
	Owner            middleware.OwnerConfig
	AllowedOrigins   []string
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(middleware.NewCORS(cfg.AllowedOrigins))
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Owner(cfg.Owner))

		// Idempotency middleware for POST appends
		if cfg.IdempotencyStore != nil {
			var replays prometheus.Counter
			if cfg.Metrics != nil {
				replays = cfg.Metrics.IdempotentReplays
			}
			r.Use(middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, replays).Wrap)
		}

		// Customers and their ledger
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", cfg.CustomerHandler.Create)
			r.Get("/", cfg.CustomerHandler.List)
			r.Get("/{id}", cfg.CustomerHandler.Get)
			r.Delete("/{id}", cfg.CustomerHandler.Delete)
			r.Get("/{id}/entries", cfg.LedgerHandler.List)
			r.Post("/{id}/entries", cfg.LedgerHandler.Append)
			r.Get("/{id}/statement", cfg.LedgerHandler.Statement)
		})

		// Cashbook
		r.Route("/cashbook", func(r chi.Router) {
			r.Get("/", cfg.CashbookHandler.Overview)
			r.Post("/", cfg.CashbookHandler.Append)
			r.Get("/categories", cfg.CashbookHandler.ListCategories)
			r.Post("/categories", cfg.CashbookHandler.CreateCategory)
		})

		// Products and stock
		r.Route("/products", func(r chi.Router) {
			r.Post("/", cfg.ProductHandler.Create)
			r.Get("/", cfg.ProductHandler.List)
			r.Get("/reconciliation", cfg.ProductHandler.Reconcile)
			r.Get("/{id}", cfg.ProductHandler.Get)
			r.Put("/{id}", cfg.ProductHandler.Update)
			r.Delete("/{id}", cfg.ProductHandler.Delete)
			r.Post("/{id}/stock", cfg.ProductHandler.AdjustStock)
			r.Get("/{id}/movements", cfg.ProductHandler.Movements)
		})
	})

	return r
}
