package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusRecorder_Counters(t *testing.T) {
	t.Parallel()

	m := NewPrometheus()
	m.IncUserCreated()
	m.IncUserCreated()
	m.IncUserLookupMiss()
	m.IncUserRejected("email_in_use")
	m.IncUserRejected("email_in_use")
	m.IncUserRejected("name_required")
	m.IncEventPublished(EventSuccess)
	m.IncEventPublished(EventDropped)
	m.IncEventPublished("timeout")

	if got := testutil.ToFloat64(m.usersCreated); got != 2 {
		t.Errorf("users created = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.userLookupMisses); got != 1 {
		t.Errorf("lookup misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.usersRejected.WithLabelValues("email_in_use")); got != 2 {
		t.Errorf("rejected[email_in_use] = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.eventsPublished.WithLabelValues(EventSuccess)); got != 1 {
		t.Errorf("events[success] = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.eventsPublished.WithLabelValues(EventDropped)); got != 2 {
		t.Errorf("events[dropped] = %v, want 2", got)
	}
}

func TestPrometheusRecorder_Concurrent(t *testing.T) {
	t.Parallel()

	m := NewPrometheus()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncUserCreated()
			m.IncUserRejected("email_in_use")
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(m.usersCreated); got != 50 {
		t.Errorf("users created = %v, want 50", got)
	}
	if got := testutil.ToFloat64(m.usersRejected.WithLabelValues("email_in_use")); got != 50 {
		t.Errorf("rejected = %v, want 50", got)
	}
}

func TestPrometheusRecorder_HandlerExposition(t *testing.T) {
	t.Parallel()

	m := NewPrometheus()
	m.IncUserCreated()
	m.IncUserRejected("no_data")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{
		"# HELP userdir_users_created_total Users successfully created.",
		"# TYPE userdir_users_created_total counter",
		"userdir_users_created_total 1",
		`userdir_users_rejected_total{reason="no_data"} 1`,
		`userdir_events_published_total{status="success"} 0`,
		`userdir_events_published_total{status="dropped"} 0`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("exposition missing %q:\n%s", want, body)
		}
	}
}

func TestPrometheusRecorder_Middleware(t *testing.T) {
	t.Parallel()

	m := NewPrometheus()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/usuarios/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/usuarios/1", "/usuarios/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nada", nil))

	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("/usuarios/{id}", "404")); got != 2 {
		t.Errorf("requests[/usuarios/{id},404] = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("unmatched", "404")); got != 1 {
		t.Errorf("requests[unmatched,404] = %v, want 1", got)
	}
}
