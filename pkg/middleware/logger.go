package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Logger returns middleware that logs each completed request with method,
// path, status, and duration. The request identifier is included when
// RequestID runs earlier in the chain.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			}
			if id := RequestIDFromContext(r.Context()); id != "" {
				attrs = append(attrs, "request_id", id)
			}

			logger.Info("request", attrs...)
		})
	}
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
