package ports

import (
	"context"

	"github.com/brightlist/task-system/internal/core/domain"
)

// TaskRepository persists per-owner task lists, keyed by the owning
// account's email (lower-cased). Like the account list, each owner's
// collection is loaded and saved whole.
type TaskRepository interface {
	ListByOwner(ctx context.Context, email string) ([]domain.Task, error)
	SaveByOwner(ctx context.Context, email string, tasks []domain.Task) error
}
