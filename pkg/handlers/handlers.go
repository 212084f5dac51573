// Package handlers provides HTTP request and response utilities for JSON
// APIs. These stateless functions standardize payload handling across
// feature handlers.
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondNoContent writes an empty 204 response.
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondError logs the error and writes a JSON error response.
// The response body contains {"error": "<error message>"}.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// DecodeJSON decodes the request body into T, rejecting unknown fields.
func DecodeJSON[T any](r *http.Request) (T, error) {
	var payload T

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return payload, fmt.Errorf("decode request body: %w", err)
	}

	return payload, nil
}
