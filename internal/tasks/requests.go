package tasks

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CreateCommand carries the payload for creating a task.
type CreateCommand struct {
	Title  string     `json:"title" validate:"required,max=200"`
	Notes  string     `json:"notes" validate:"max=2000"`
	Status Status     `json:"status" validate:"omitempty,oneof=open done"`
	DueAt  *time.Time `json:"due_at"`
}

// Validate checks the payload against its constraints.
func (c *CreateCommand) Validate() error {
	return wrapValidation(validate.Struct(c))
}

// UpdateCommand carries the payload for replacing a task's fields.
type UpdateCommand struct {
	Title  string     `json:"title" validate:"required,max=200"`
	Notes  string     `json:"notes" validate:"max=2000"`
	Status Status     `json:"status" validate:"required,oneof=open done"`
	DueAt  *time.Time `json:"due_at"`
}

// Validate checks the payload against its constraints.
func (c *UpdateCommand) Validate() error {
	return wrapValidation(validate.Struct(c))
}

func wrapValidation(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(fields, ", "))
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
