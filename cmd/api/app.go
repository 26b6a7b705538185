package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/userdir/userdir/internal/config"
	"github.com/userdir/userdir/internal/events"
	"github.com/userdir/userdir/internal/handler"
	"github.com/userdir/userdir/internal/metrics"
	"github.com/userdir/userdir/internal/repository"
	"github.com/userdir/userdir/internal/service"
)

// application holds the wired components of one server process.
type application struct {
	store   *repository.Repository
	metrics *metrics.PrometheusRecorder
	redis   *redis.Client
	router  *chi.Mux
}

// newApplication wires the store, service and handlers.
// A nil client disables the event stream and its readiness check.
func newApplication(cfg *config.Config, logger *slog.Logger, client *redis.Client) *application {
	store := repository.New()
	recorder := metrics.NewPrometheus()

	var (
		publisher    events.Publisher = events.NewNoop()
		redisChecker handler.HealthChecker
	)
	if client != nil {
		publisher = events.NewRedisPublisher(client, logger, recorder)
		redisChecker = events.NewRedisPinger(client)
	}

	userService := service.NewUserService(store, logger,
		service.WithPublisher(publisher),
		service.WithMetrics(recorder),
	)

	r := setupRouter(routerDeps{
		home:    handler.New(userService),
		health:  handler.NewHealthHandler(store, redisChecker, logger),
		users:   handler.NewUserHandler(userService, logger),
		metrics: handler.NewMetricsHandler(recorder),

		requestMetrics: recorder.Middleware,
	}, cfg, logger)

	return &application{
		store:   store,
		metrics: recorder,
		redis:   client,
		router:  r,
	}
}
