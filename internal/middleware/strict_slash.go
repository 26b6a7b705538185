package middleware

import (
	"net/http"
	"strings"
)

// StrictSlash routes any path other than "/" that ends in a slash to
// notFound, so "/usuarios/" is not an alias of "/usuarios".
func StrictSlash(notFound http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p := r.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") {
				notFound(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
