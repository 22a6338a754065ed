// Package mwrawpath makes chi route on the escaped request path, so an
// encoded slash stays inside its path segment.
package mwrawpath

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// New must run before any middleware that rewrites the route path, such as
// middleware.URLFormat. Handlers read the escaped parameters through
// urlparam.Path.
func New(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePath == "" && r.URL.RawPath != "" {
			rctx.RoutePath = r.URL.RawPath
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(fn)
}
