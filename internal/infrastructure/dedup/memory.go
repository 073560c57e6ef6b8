package dedup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/brightlist/task-system/internal/infrastructure/metrics"
)

// Memory is the in-process checker used when no Redis profile is configured.
// Marks expire after the TTL; expired entries are dropped lazily on lookup.
type Memory struct {
	mu   sync.Mutex
	ttl  time.Duration
	seen map[string]time.Time
}

// NewMemory creates a Memory checker. ttl should be at least as long as the
// due-notification window; defaultTTL is used when ttl is not positive.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Memory{ttl: ttl, seen: make(map[string]time.Time)}
}

func (d *Memory) IsDuplicate(_ context.Context, taskID string, at time.Time) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := memKey(taskID, at)
	expires, ok := d.seen[key]
	if ok && time.Now().Before(expires) {
		metrics.RemindersDedupTotal.WithLabelValues("hit").Inc()
		return true, nil
	}
	if ok {
		delete(d.seen, key)
	}
	metrics.RemindersDedupTotal.WithLabelValues("miss").Inc()
	return false, nil
}

func (d *Memory) Mark(_ context.Context, taskID string, at time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen[memKey(taskID, at)] = time.Now().Add(d.ttl)
	return nil
}

func memKey(taskID string, at time.Time) string {
	return fmt.Sprintf("%s:%d", taskID, at.Unix())
}
