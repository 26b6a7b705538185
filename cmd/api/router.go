package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/userdir/userdir/internal/config"
	"github.com/userdir/userdir/internal/handler"
	"github.com/userdir/userdir/internal/middleware"
)

type routerDeps struct {
	home    *handler.Handler
	health  *handler.HealthHandler
	users   *handler.UserHandler
	metrics *handler.MetricsHandler

	// requestMetrics instruments every request; nil disables it.
	requestMetrics func(http.Handler) http.Handler
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(deps routerDeps, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	if deps.requestMetrics != nil {
		r.Use(deps.requestMetrics)
	}
	r.Use(middleware.Recoverer(logger, cfg.IsDevelopment()))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: cfg.IsDevelopment()}))
	r.Use(middleware.CORS(corsCfg))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))
	r.Use(middleware.StrictSlash(deps.home.NotFound))
	r.Use(chimiddleware.GetHead)

	// Operational endpoints
	r.Get("/healthz", deps.health.Healthz)
	r.Get("/readyz", deps.health.Readyz)
	r.Get("/metrics", deps.metrics.Metrics)

	r.Get("/", deps.home.Home)

	r.Route("/usuarios", func(r chi.Router) {
		r.Get("/", deps.users.List)
		r.Post("/", deps.users.Create)
		r.Get("/{id}", deps.users.Get)
	})

	// 404 and 405 handlers
	r.NotFound(deps.home.NotFound)
	r.MethodNotAllowed(deps.home.MethodNotAllowed)

	return r
}
