package middleware

import "net/http"

// MaxBody returns middleware that caps the request body at limit bytes using
// http.MaxBytesReader. Handlers reading past the limit receive an error and
// the connection is closed. A non-positive limit disables the cap.
func MaxBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
