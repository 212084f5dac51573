package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

const taskColumns = "id, title, notes, status, due_at, created_at, updated_at"

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a task repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "tasks"),
	}
}

func (r *repo) List(ctx context.Context, status Status) ([]Task, error) {
	q := fmt.Sprintf("SELECT %s FROM tasks ORDER BY created_at DESC", taskColumns)
	args := []any{}
	if status != "" {
		q = fmt.Sprintf("SELECT %s FROM tasks WHERE status = $1 ORDER BY created_at DESC", taskColumns)
		args = append(args, status)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Task, error) {
	q := fmt.Sprintf("SELECT %s FROM tasks WHERE id = $1", taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return &t, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Task, error) {
	status := cmd.Status
	if status == "" {
		status = StatusOpen
	}

	q := fmt.Sprintf(`
		INSERT INTO tasks (title, notes, status, due_at)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, q, cmd.Title, cmd.Notes, status, cmd.DueAt))
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	r.logger.Info("task created", "id", t.ID)
	return &t, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Task, error) {
	q := fmt.Sprintf(`
		UPDATE tasks
		SET title = $2, notes = $3, status = $4, due_at = $5, updated_at = now()
		WHERE id = $1
		RETURNING %s`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, q, id, cmd.Title, cmd.Notes, cmd.Status, cmd.DueAt))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}

	return &t, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	r.logger.Info("task deleted", "id", id)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (Task, error) {
	var t Task
	err := row.Scan(&t.ID, &t.Title, &t.Notes, &t.Status, &t.DueAt, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}
