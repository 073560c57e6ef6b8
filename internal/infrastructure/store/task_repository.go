package store

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/brightlist/task-system/internal/core/domain"
	"github.com/brightlist/task-system/internal/core/ports"
	"github.com/brightlist/task-system/internal/infrastructure/metrics"
)

const taskKeyPrefix = "tasks:"

// TaskRepository persists one task list per owning account, keyed by the
// lower-cased owner email.
type TaskRepository struct {
	kv ports.KV
}

func NewTaskRepository(kv ports.KV) *TaskRepository {
	return &TaskRepository{kv: kv}
}

func taskKey(email string) string {
	return taskKeyPrefix + strings.ToLower(email)
}

func (r *TaskRepository) ListByOwner(ctx context.Context, email string) ([]domain.Task, error) {
	key := taskKey(email)
	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var tasks []domain.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		metrics.StoreFallbacksTotal.WithLabelValues(taskKeyPrefix + "*").Inc()
		return nil, nil
	}
	return tasks, nil
}

func (r *TaskRepository) SaveByOwner(ctx context.Context, email string, tasks []domain.Task) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, taskKey(email), string(raw))
}
