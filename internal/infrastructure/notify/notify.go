// Package notify implements the reminder notifier chain: a structured-log
// notifier standing in for the platform popup facility, and a gate that
// honours the platform notification permission.
package notify

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/brightlist/task-system/internal/core/service"
	"github.com/brightlist/task-system/internal/infrastructure/metrics"
)

// Permission mirrors the platform notification permission states.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// ParsePermission maps a configured string onto a Permission, falling back
// to PermissionDefault for unknown values.
func ParsePermission(s string) Permission {
	switch Permission(strings.ToLower(strings.TrimSpace(s))) {
	case PermissionGranted:
		return PermissionGranted
	case PermissionDenied:
		return PermissionDenied
	default:
		return PermissionDefault
	}
}

// Log delivers notifications to the structured log. It stands in for the
// display layer's popup facility, which is out of scope here.
type Log struct {
	log zerolog.Logger
}

func NewLog(log zerolog.Logger) *Log {
	return &Log{log: log}
}

func (l *Log) Send(_ context.Context, title, body string) error {
	l.log.Info().Str("title", title).Str("body", body).Msg("notification")
	metrics.RemindersNotifiedTotal.Inc()
	return nil
}

// Gate wraps a notifier with the permission state: denied drops the popup
// silently, anything else passes through. There is no prompt to raise in a
// headless core, so "default" behaves like granted.
type Gate struct {
	permission Permission
	next       service.Notifier
	log        zerolog.Logger
}

func NewGate(permission Permission, next service.Notifier, log zerolog.Logger) *Gate {
	return &Gate{permission: permission, next: next, log: log}
}

func (g *Gate) Send(ctx context.Context, title, body string) error {
	if g.permission == PermissionDenied {
		g.log.Debug().Str("title", title).Msg("notification suppressed, permission denied")
		return nil
	}
	return g.next.Send(ctx, title, body)
}
