package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "userdir"

// Event publish outcomes.
const (
	EventSuccess = "success"
	EventDropped = "dropped"
)

// PrometheusRecorder keeps counters on a private registry.
type PrometheusRecorder struct {
	registry *prometheus.Registry
	handler  http.Handler

	usersCreated     prometheus.Counter
	usersRejected    *prometheus.CounterVec
	userLookupMisses prometheus.Counter
	eventsPublished  *prometheus.CounterVec

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewPrometheus creates a recorder and registers its collectors.
func NewPrometheus() *PrometheusRecorder {
	registry := prometheus.NewRegistry()

	m := &PrometheusRecorder{
		registry: registry,
		usersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_created_total",
			Help:      "Users successfully created.",
		}),
		usersRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_rejected_total",
			Help:      "Create requests rejected, by reason.",
		}, []string{"reason"}),
		userLookupMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_lookup_misses_total",
			Help:      "Lookups by id that found no user.",
		}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "User events written to the stream, by status.",
		}, []string{"status"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	registry.MustRegister(
		m.usersCreated,
		m.usersRejected,
		m.userLookupMisses,
		m.eventsPublished,
		m.requestsTotal,
		m.requestDuration,
	)

	// Expose both statuses from the first scrape.
	m.eventsPublished.WithLabelValues(EventSuccess)
	m.eventsPublished.WithLabelValues(EventDropped)

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *PrometheusRecorder) Handler() http.Handler {
	return m.handler
}

// Registerer exposes the registry for additional collectors.
func (m *PrometheusRecorder) Registerer() prometheus.Registerer {
	return m.registry
}

// IncUserCreated increments the created counter.
func (m *PrometheusRecorder) IncUserCreated() {
	m.usersCreated.Inc()
}

// IncUserRejected increments the rejection counter for reason.
func (m *PrometheusRecorder) IncUserRejected(reason string) {
	m.usersRejected.WithLabelValues(reason).Inc()
}

// IncUserLookupMiss increments the lookup miss counter.
func (m *PrometheusRecorder) IncUserLookupMiss() {
	m.userLookupMisses.Inc()
}

// IncEventPublished counts a publish attempt. Unknown statuses count as dropped.
func (m *PrometheusRecorder) IncEventPublished(status string) {
	if status != EventSuccess {
		status = EventDropped
	}
	m.eventsPublished.WithLabelValues(status).Inc()
}

// Middleware records request counts and durations per chi route pattern.
func (m *PrometheusRecorder) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := routePattern(r)
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if !r.wroteHeader {
		r.status = status
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(status)
}

// routePattern keeps label cardinality bounded: unmatched paths share one label.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
