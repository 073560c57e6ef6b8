package ports

import (
	"context"
	"time"

	"github.com/brightlist/task-system/internal/core/domain"
)

// CreateTaskInput carries the data for a new task. Title is required
// (non-empty after trimming); an omitted or unknown category defaults to
// Other; the reminder is optional.
type CreateTaskInput struct {
	Title       string `validate:"required"`
	Description string
	Category    domain.Category
	ReminderAt  *time.Time
}

// UpdateTaskInput is a partial update: nil fields are left untouched, set
// fields overwrite (shallow merge). Status toggling goes through here too.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Category    *domain.Category
	Status      *domain.Status
	ReminderAt  *time.Time
}

// TaskService manages the current account's task list. Mutating operations
// require an active session and fail with domain.ErrNotAuthenticated without
// one; List and Stats return empty results instead.
type TaskService interface {
	// List returns the owner's tasks ordered by creation time, newest first.
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, id string, input UpdateTaskInput) (*domain.Task, error)
	// Delete removes the task if present; deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (domain.Stats, error)
}
