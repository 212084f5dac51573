package tasks

import (
	"errors"
	"net/http"
)

// Domain errors for task operations.
var (
	ErrNotFound   = errors.New("task not found")
	ErrValidation = errors.New("invalid task payload")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
