package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/brightlist/task-system/internal/core/domain"
	"github.com/brightlist/task-system/internal/infrastructure/dedup"
)

type stubNotifier struct {
	sent []string
}

func (n *stubNotifier) Send(_ context.Context, _, body string) error {
	n.sent = append(n.sent, body)
	return nil
}

type failingDedup struct{}

func (failingDedup) IsDuplicate(context.Context, string, time.Time) (bool, error) {
	return false, errors.New("checker unavailable")
}
func (failingDedup) Mark(context.Context, string, time.Time) error {
	return errors.New("checker unavailable")
}

func reminderTask(id, title string, status domain.Status, at time.Time) domain.Task {
	return domain.Task{
		ID:         id,
		Title:      title,
		Category:   domain.CategoryOther,
		Status:     status,
		ReminderAt: &at,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestDueWithin_Window(t *testing.T) {
	now := time.Now().UTC()
	tasks := []domain.Task{
		reminderTask("a", "in 3 minutes", domain.StatusPending, now.Add(3*time.Minute)),
		reminderTask("b", "completed", domain.StatusCompleted, now.Add(3*time.Minute)),
		reminderTask("c", "already passed", domain.StatusPending, now.Add(-time.Minute)),
		{ID: "d", Title: "no reminder", Status: domain.StatusPending},
	}

	due := DueWithin(tasks, now, 5*time.Minute)
	if len(due) != 1 || due[0].ID != "a" {
		t.Fatalf("5m window: expected only task a, got %+v", due)
	}
	if due := DueWithin(tasks, now, 2*time.Minute); len(due) != 0 {
		t.Fatalf("2m window must exclude the 3m reminder, got %+v", due)
	}
}

func TestDueWithin_Bounds(t *testing.T) {
	now := time.Now().UTC()
	window := 5 * time.Minute
	atNow := reminderTask("now", "exactly now", domain.StatusPending, now)
	atEdge := reminderTask("edge", "at the window edge", domain.StatusPending, now.Add(window))

	if due := DueWithin([]domain.Task{atNow}, now, window); len(due) != 0 {
		t.Fatalf("the interval is open at now, got %+v", due)
	}
	if due := DueWithin([]domain.Task{atEdge}, now, window); len(due) != 1 {
		t.Fatalf("the interval is closed at now+window, got %+v", due)
	}
}

func TestUpcomingWithin_OrderingAndBounds(t *testing.T) {
	now := time.Now().UTC()
	tasks := []domain.Task{
		reminderTask("far", "in 10 hours", domain.StatusPending, now.Add(10*time.Hour)),
		reminderTask("near", "in 1 hour", domain.StatusPending, now.Add(time.Hour)),
		reminderTask("done", "completed", domain.StatusCompleted, now.Add(time.Hour)),
		reminderTask("late", "in 2 days", domain.StatusPending, now.Add(48*time.Hour)),
		reminderTask("exact", "exactly now", domain.StatusPending, now),
	}

	upcoming := UpcomingWithin(tasks, now, 24*time.Hour)
	if len(upcoming) != 3 {
		t.Fatalf("expected 3 upcoming tasks, got %d", len(upcoming))
	}
	for i, want := range []string{"exact", "near", "far"} {
		if upcoming[i].ID != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, upcoming[i].ID)
		}
	}
}

func TestScanDue_NotifiesOncePerReminder(t *testing.T) {
	now := time.Now().UTC()
	notifier := &stubNotifier{}
	svc := NewReminderService(notifier, dedup.NewMemory(time.Hour), zerolog.Nop())

	tasks := []domain.Task{reminderTask("a", "Buy milk", domain.StatusPending, now.Add(3*time.Minute))}

	// Two consecutive polling cycles over the same window.
	first := svc.ScanDue(context.Background(), tasks, now, 5*time.Minute)
	second := svc.ScanDue(context.Background(), tasks, now.Add(time.Minute), 5*time.Minute)

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("both scans must report the task as due, got %d and %d", len(first), len(second))
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(notifier.sent))
	}
	if notifier.sent[0] != "Don't forget: Buy milk" {
		t.Fatalf("unexpected notification body %q", notifier.sent[0])
	}
}

func TestScanDue_EditedReminderRearms(t *testing.T) {
	now := time.Now().UTC()
	notifier := &stubNotifier{}
	svc := NewReminderService(notifier, dedup.NewMemory(time.Hour), zerolog.Nop())

	task := reminderTask("a", "Buy milk", domain.StatusPending, now.Add(2*time.Minute))
	svc.ScanDue(context.Background(), []domain.Task{task}, now, 5*time.Minute)

	moved := now.Add(4 * time.Minute)
	task.ReminderAt = &moved
	svc.ScanDue(context.Background(), []domain.Task{task}, now, 5*time.Minute)

	if len(notifier.sent) != 2 {
		t.Fatalf("a moved reminder must notify again, got %d notifications", len(notifier.sent))
	}
}

func TestScanDue_DedupFailureStillNotifies(t *testing.T) {
	now := time.Now().UTC()
	notifier := &stubNotifier{}
	svc := NewReminderService(notifier, failingDedup{}, zerolog.Nop())

	tasks := []domain.Task{reminderTask("a", "Buy milk", domain.StatusPending, now.Add(time.Minute))}
	svc.ScanDue(context.Background(), tasks, now, 5*time.Minute)

	if len(notifier.sent) != 1 {
		t.Fatalf("dedup failure must not drop the notification, got %d", len(notifier.sent))
	}
}
