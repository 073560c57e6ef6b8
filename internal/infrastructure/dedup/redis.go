// Package dedup provides checkers that remember which reminders have
// already produced a notification, so consecutive polling cycles over the
// same window notify at most once per (task, reminder timestamp) pair.
package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/brightlist/task-system/internal/infrastructure/metrics"
)

const defaultTTL = time.Hour

// Redis provides reminder dedup checks backed by Redis.
// Key format: reminder:<task_id>:<unix_reminder_timestamp>
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis checker. ttl should be at least as long as the
// due-notification window; defaultTTL is used when ttl is not positive.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Redis{client: client, ttl: ttl}
}

// IsDuplicate reports whether this reminder has already been notified.
func (d *Redis) IsDuplicate(ctx context.Context, taskID string, at time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(taskID, at)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	if n > 0 {
		metrics.RemindersDedupTotal.WithLabelValues("hit").Inc()
		return true, nil
	}
	metrics.RemindersDedupTotal.WithLabelValues("miss").Inc()
	return false, nil
}

// Mark records that this reminder has been notified (expires after ttl).
func (d *Redis) Mark(ctx context.Context, taskID string, at time.Time) error {
	return d.client.Set(ctx, d.key(taskID, at), "1", d.ttl).Err()
}

func (d *Redis) key(taskID string, at time.Time) string {
	return fmt.Sprintf("reminder:%s:%d", taskID, at.Unix())
}
