package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/brightlist/task-system/internal/core/domain"
)

// DueWithin returns the pending tasks whose reminder timestamp falls in
// (now, now+window]. Pure selection; no side effects.
func DueWithin(tasks []domain.Task, now time.Time, window time.Duration) []domain.Task {
	deadline := now.Add(window)
	var due []domain.Task
	for _, t := range tasks {
		if t.Status != domain.StatusPending || t.ReminderAt == nil {
			continue
		}
		if t.ReminderAt.After(now) && !t.ReminderAt.After(deadline) {
			due = append(due, t)
		}
	}
	return due
}

// UpcomingWithin returns the non-completed tasks whose reminder timestamp
// falls in [now, now+window], ascending by reminder time. Pure selection;
// used to feed the upcoming-reminders indicator.
func UpcomingWithin(tasks []domain.Task, now time.Time, window time.Duration) []domain.Task {
	deadline := now.Add(window)
	var upcoming []domain.Task
	for _, t := range tasks {
		if t.Status == domain.StatusCompleted || t.ReminderAt == nil {
			continue
		}
		if !t.ReminderAt.Before(now) && !t.ReminderAt.After(deadline) {
			upcoming = append(upcoming, t)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].ReminderAt.Before(*upcoming[j].ReminderAt)
	})
	return upcoming
}

// Notifier delivers a reminder popup to the display layer.
type Notifier interface {
	Send(ctx context.Context, title, body string) error
}

// DedupChecker remembers which (task id, reminder timestamp) pairs already
// produced a notification, so consecutive scans over the same window do not
// notify twice.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, taskID string, at time.Time) (bool, error)
	Mark(ctx context.Context, taskID string, at time.Time) error
}

// ReminderService wraps the pure window scans with the notification side
// effect and its dedup bookkeeping.
type ReminderService struct {
	notifier Notifier
	dedup    DedupChecker
	log      zerolog.Logger
}

func NewReminderService(notifier Notifier, dedup DedupChecker, log zerolog.Logger) *ReminderService {
	return &ReminderService{notifier: notifier, dedup: dedup, log: log}
}

// ScanDue returns DueWithin(tasks, now, window) and sends one notification
// per due task. A task notifies at most once per reminder timestamp; editing
// the reminder re-arms it. On a dedup-check failure the notification is sent
// anyway — a rare duplicate beats a silently lost reminder.
func (s *ReminderService) ScanDue(ctx context.Context, tasks []domain.Task, now time.Time, window time.Duration) []domain.Task {
	due := DueWithin(tasks, now, window)
	for _, t := range due {
		isDup, err := s.dedup.IsDuplicate(ctx, t.ID, *t.ReminderAt)
		if err != nil {
			s.log.Warn().Err(err).Str("task_id", t.ID).Msg("dedup check failed, notifying anyway")
		} else if isDup {
			s.log.Debug().Str("task_id", t.ID).Msg("reminder already notified, skipped")
			continue
		}

		if err := s.dedup.Mark(ctx, t.ID, *t.ReminderAt); err != nil {
			s.log.Warn().Err(err).Str("task_id", t.ID).Msg("failed to set dedup key")
		}
		if err := s.notifier.Send(ctx, "Task Reminder", "Don't forget: "+t.Title); err != nil {
			s.log.Warn().Err(err).Str("task_id", t.ID).Msg("reminder notification failed")
		}
	}
	return due
}
