package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestLogging_BodyNotLogged ensures request payloads (names, emails) stay out of logs.
func TestLogging_BodyNotLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	wrapped := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	}))

	req := httptest.NewRequest(http.MethodPost, "/usuarios", strings.NewReader(`{"nome":"Ana","email":"ana@email.com"}`))
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()
	for _, sensitive := range []string{"ana@email.com", `"nome"`} {
		if strings.Contains(logOutput, sensitive) {
			t.Errorf("log output contains request body fragment %q", sensitive)
		}
	}
}

// TestLogging_BasicFields verifies that expected fields are logged.
func TestLogging_BasicFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	wrapped := RequestID(Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	})))

	req := httptest.NewRequest(http.MethodPost, "/usuarios", nil)
	req.Header.Set("User-Agent", "TestBrowser/2.0")
	req.Header.Set(RequestIDHeader, "req-42")

	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()

	expectedFields := []string{
		`"method":"POST"`,
		`"path":"/usuarios"`,
		`"status_code":201`,
		`"bytes":5`,
		`"request_id":"req-42"`,
		`"user_agent":"TestBrowser/2.0"`,
	}

	for _, field := range expectedFields {
		if !strings.Contains(logOutput, field) {
			t.Errorf("Expected log field %s not found in output: %s", field, logOutput)
		}
	}
}

// TestLogging_ErrorStatusLevel verifies error statuses are logged at higher levels.
func TestLogging_ErrorStatusLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantLevel  string
	}{
		{"success", http.StatusOK, "INFO"},
		{"created", http.StatusCreated, "INFO"},
		{"bad request", http.StatusBadRequest, "WARN"},
		{"not found", http.StatusNotFound, "WARN"},
		{"method not allowed", http.StatusMethodNotAllowed, "WARN"},
		{"internal error", http.StatusInternalServerError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			wrapped := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))

			wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

			if !strings.Contains(buf.String(), `"level":"`+tt.wantLevel+`"`) {
				t.Errorf("Expected log level %s for status %d, got output: %s", tt.wantLevel, tt.statusCode, buf.String())
			}
		})
	}
}

// TestResponseWriter_DefaultStatus verifies default status is 200 OK.
func TestResponseWriter_DefaultStatus(t *testing.T) {
	t.Parallel()

	wrapped := wrapResponseWriter(httptest.NewRecorder())

	_, _ = wrapped.Write([]byte("hello"))

	if wrapped.status != http.StatusOK {
		t.Errorf("default status = %d, want %d", wrapped.status, http.StatusOK)
	}
	if wrapped.bytes != 5 {
		t.Errorf("bytes = %d, want 5", wrapped.bytes)
	}
}

// TestResponseWriter_DoubleWriteHeader ensures only first WriteHeader takes effect.
func TestResponseWriter_DoubleWriteHeader(t *testing.T) {
	t.Parallel()

	wrapped := wrapResponseWriter(httptest.NewRecorder())

	wrapped.WriteHeader(http.StatusCreated)
	wrapped.WriteHeader(http.StatusInternalServerError)

	if wrapped.status != http.StatusCreated {
		t.Errorf("status after double write = %d, want %d", wrapped.status, http.StatusCreated)
	}
}
