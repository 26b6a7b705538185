package middleware

import (
	"net/http"

	"github.com/unrolled/secure"
)

// SecurityConfig holds configuration for security headers.
type SecurityConfig struct {
	// IsDevelopment disables HSTS in dev environments.
	IsDevelopment bool
}

// Security returns a middleware that applies security headers to all responses.
// HSTS is only emitted outside development and only for HTTPS requests,
// including those terminated by a proxy that sets X-Forwarded-Proto.
func Security(cfg SecurityConfig) func(http.Handler) http.Handler {
	sec := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		CustomBrowserXssValue: "0",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
		PermissionsPolicy:     "geolocation=(), microphone=(), camera=(), payment=(), usb=()",
		STSSeconds:            31536000,
		STSIncludeSubdomains:  true,
		STSPreload:            true,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
		IsDevelopment:         cfg.IsDevelopment,
	})

	return func(next http.Handler) http.Handler {
		noStore := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store")
			next.ServeHTTP(w, r)
		})
		return sec.Handler(noStore)
	}
}

// payloadTooLargeBody is written when Content-Length exceeds the limit.
const payloadTooLargeBody = `{"erro":"Corpo da requisição muito grande"}` + "\n"

// MaxBodySize returns a middleware that limits request body size.
// Bodies that declare an oversized Content-Length are rejected with 413;
// streamed bodies are cut off by http.MaxBytesReader and fail to decode.
func MaxBodySize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.ContentLength > maxBytes {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_, _ = w.Write([]byte(payloadTooLargeBody))
				return
			}

			if r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			}

			next.ServeHTTP(w, r)
		})
	}
}
