package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/iho/takeledger/internal/adapter/http/handler"
	"github.com/iho/takeledger/internal/adapter/http/middleware"
	"github.com/iho/takeledger/internal/infrastructure/auth"
	"github.com/iho/takeledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	TakeHandler      *handler.TakeHandler
	AuditHandler     *handler.AuditHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore // optional
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter // optional
	JWTManager       *auth.JWTManager        // nil disables authentication
	OnAuthFailure    middleware.AuthFailureFunc
	MetricsHandler   http.Handler // optional, served at /metrics
	Logger           *zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	authenticated, optional, adminOnly := authChains(cfg)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Teams
		r.Route("/teams/{slug}", func(r chi.Router) {
			r.With(optional...).Get("/", cfg.TakeHandler.GetTeam)
			r.With(optional...).Get("/takes", cfg.TakeHandler.Distribution)
			r.With(optional...).Get("/members/{id}/take", cfg.TakeHandler.GetTake)

			r.With(authenticated...).Put("/members/{id}/take", cfg.TakeHandler.SetTake)
			r.With(authenticated...).Post("/members", cfg.TakeHandler.AddMember)
			r.With(authenticated...).Delete("/members/{id}", cfg.TakeHandler.RemoveMember)

			r.With(adminOnly...).Get("/audit", cfg.AuditHandler.CheckTeam)
		})

		// Members
		r.With(adminOnly...).Get("/members/{id}/audit", cfg.AuditHandler.CheckMember)
	})

	return r
}

type chain = []func(http.Handler) http.Handler

// authChains returns the middleware for authenticated, optionally
// authenticated and admin-only routes. All are empty when auth is disabled.
func authChains(cfg RouterConfig) (authenticated, optional, adminOnly chain) {
	if cfg.JWTManager == nil {
		return nil, nil, nil
	}

	required := middleware.AuthMiddleware(cfg.JWTManager, cfg.OnAuthFailure)

	return chain{required},
		chain{middleware.OptionalAuth(cfg.JWTManager)},
		chain{required, middleware.RequireAdmin}
}
