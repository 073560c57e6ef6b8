package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/brightlist/task-system/internal/core/domain"
	"github.com/brightlist/task-system/internal/core/ports"
)

// TaskService implements task CRUD and stats for the current session's
// account. Each mutation loads the owner's full list, rewrites it in memory,
// and saves it back whole — last write wins.
type TaskService struct {
	tasks    ports.TaskRepository
	sessions ports.SessionRepository
	validate *structValidator
	log      zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, sessions ports.SessionRepository, log zerolog.Logger) *TaskService {
	return &TaskService{
		tasks:    tasks,
		sessions: sessions,
		validate: newStructValidator(),
		log:      log,
	}
}

// owner resolves the storage key for the current session's account.
func (s *TaskService) owner(ctx context.Context) (string, error) {
	account, ok, err := s.sessions.Current(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrNotAuthenticated
	}
	return strings.ToLower(account.Email), nil
}

// List returns the owner's tasks, newest first. Without an active session
// the result is empty rather than an error.
func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	email, err := s.owner(ctx)
	if errors.Is(err, domain.ErrNotAuthenticated) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	list, err := s.tasks.ListByOwner(ctx, email)
	if err != nil {
		return nil, err
	}
	// Stable so that equal timestamps keep head-insertion order.
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// Create validates the input, inserts the new task at the head of the
// owner's list, and persists it.
func (s *TaskService) Create(ctx context.Context, input ports.CreateTaskInput) (*domain.Task, error) {
	email, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	input.Title = strings.TrimSpace(input.Title)
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	category := input.Category
	if !category.Valid() {
		category = domain.CategoryOther
	}

	task := domain.Task{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: strings.TrimSpace(input.Description),
		Category:    category,
		Status:      domain.StatusPending,
		ReminderAt:  input.ReminderAt,
		CreatedAt:   time.Now().UTC(),
	}

	list, err := s.tasks.ListByOwner(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := s.tasks.SaveByOwner(ctx, email, append([]domain.Task{task}, list...)); err != nil {
		return nil, err
	}

	s.log.Info().Str("task_id", task.ID).Str("category", string(task.Category)).Msg("task created")
	return &task, nil
}

// Update merges the set fields of input over the stored task and persists
// the result. Unset (nil) fields are left untouched.
func (s *TaskService) Update(ctx context.Context, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	email, err := s.owner(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.tasks.ListByOwner(ctx, email)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, t := range list {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}

	task := list[idx]
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = strings.TrimSpace(*input.Description)
	}
	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, *input.Category)
		}
		task.Category = *input.Category
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *input.Status)
		}
		task.Status = *input.Status
	}
	if input.ReminderAt != nil {
		at := *input.ReminderAt
		task.ReminderAt = &at
	}

	list[idx] = task
	if err := s.tasks.SaveByOwner(ctx, email, list); err != nil {
		return nil, err
	}

	s.log.Info().Str("task_id", task.ID).Str("status", string(task.Status)).Msg("task updated")
	return &task, nil
}

// Delete removes the task with the given id. An unknown id is a no-op.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	email, err := s.owner(ctx)
	if err != nil {
		return err
	}

	list, err := s.tasks.ListByOwner(ctx, email)
	if err != nil {
		return err
	}

	kept := list[:0]
	for _, t := range list {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if err := s.tasks.SaveByOwner(ctx, email, kept); err != nil {
		return err
	}

	s.log.Debug().Str("task_id", id).Msg("task deleted")
	return nil
}

// Stats computes total/completed/pending counts in a single pass. Without an
// active session all counts are zero.
func (s *TaskService) Stats(ctx context.Context) (domain.Stats, error) {
	email, err := s.owner(ctx)
	if errors.Is(err, domain.ErrNotAuthenticated) {
		return domain.Stats{}, nil
	}
	if err != nil {
		return domain.Stats{}, err
	}

	list, err := s.tasks.ListByOwner(ctx, email)
	if err != nil {
		return domain.Stats{}, err
	}

	stats := domain.Stats{Total: len(list)}
	for _, t := range list {
		if t.Status == domain.StatusCompleted {
			stats.Completed++
		}
	}
	stats.Pending = stats.Total - stats.Completed
	return stats, nil
}
