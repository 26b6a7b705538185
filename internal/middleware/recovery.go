package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// internalErrorBody is written for any panic; no detail is exposed.
const internalErrorBody = `{"erro":"Erro interno do servidor"}` + "\n"

// Recoverer is a middleware that recovers from panics.
// It logs the panic and returns a generic 500 JSON body.
// When withStack is true the stack trace is attached to the log record.
func Recoverer(logger *slog.Logger, withStack bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				attrs := []any{
					slog.String("request_id", GetRequestID(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("panic", rvr),
				}
				if withStack {
					attrs = append(attrs, slog.String("stack", string(debug.Stack())))
				}
				logger.Error("panic recovered", attrs...)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(internalErrorBody))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
