package handler

import (
	"net/http"
)

// MetricsExporter serves collected metrics.
type MetricsExporter interface {
	Handler() http.Handler
}

// MetricsHandler exposes application metrics.
type MetricsHandler struct {
	exporter MetricsExporter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(exporter MetricsExporter) *MetricsHandler {
	return &MetricsHandler{exporter: exporter}
}

// Metrics returns metrics in Prometheus exposition format.
//
// GET /metrics
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.exporter == nil {
		writeError(w, http.StatusServiceUnavailable, MsgMetricsUnavailable)
		return
	}
	h.exporter.Handler().ServeHTTP(w, r)
}
