// Package middleware provides the HTTP middleware used by the reference
// service: request identifiers, request logging, CORS, body limits, and
// trailing-slash canonicalization. Every middleware is a
// func(http.Handler) http.Handler, composable through a router handle's
// middleware chain.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request identifier.
const RequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestID returns middleware that assigns each request an identifier.
// An inbound X-Request-ID header is honored; otherwise a new UUID is
// generated. The identifier is echoed on the response and stored in the
// request context.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(RequestIDHeader, id)

			ctx := context.WithValue(r.Context(), requestIDKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFromContext returns the request identifier stored by RequestID,
// or an empty string when none is present.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
