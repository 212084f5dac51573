// Package tasks implements the task feature module: the model, persistence,
// and the HTTP handler that registers the task routes.
package tasks

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a task.
type Status string

// Task status constants.
const (
	StatusOpen Status = "open"
	StatusDone Status = "done"
)

// Task is a unit of tracked work.
type Task struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Notes     string     `json:"notes"`
	Status    Status     `json:"status"`
	DueAt     *time.Time `json:"due_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
