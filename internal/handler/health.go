package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// HealthChecker defines an interface for checking service health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	store  HealthChecker
	events HealthChecker
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
// Pass nil for events when no Redis stream is configured.
func NewHealthHandler(store, events HealthChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		events: events,
		logger: logger,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz is a liveness probe endpoint.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz checks every dependency and returns 200 only if all are healthy.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string)
	healthy := true

	check := func(name string, c HealthChecker) {
		if c == nil {
			checks[name] = "not configured"
			return
		}
		if err := c.Ping(ctx); err != nil {
			// Dependency errors can carry addresses; keep them in the log.
			h.logger.Warn("readiness check failed", "check", name, "error", err)
			checks[name] = "error"
			healthy = false
			return
		}
		checks[name] = "ok"
	}

	check("store", h.store)
	check("redis", h.events)

	status := "ok"
	statusCode := http.StatusOK
	if !healthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, statusCode, HealthResponse{
		Status: status,
		Checks: checks,
	})
}
