package tasks

import (
	"context"

	"github.com/google/uuid"
)

// System defines task persistence operations.
type System interface {
	List(ctx context.Context, status Status) ([]Task, error)
	Find(ctx context.Context, id uuid.UUID) (*Task, error)
	Create(ctx context.Context, cmd CreateCommand) (*Task, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
