// Package metrics defines and registers all custom Prometheus metrics for
// the task system. It is the single source of truth for metric names,
// labels, and help strings; registration happens at import time via
// promauto and the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskboard"

// TasksByStatus tracks the current number of stored tasks per status for the
// active account. Updated by the reminder poller on each due scan.
// Label:
//   - status: "pending" or "completed"
var TasksByStatus = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "tasks",
		Help:      "Current number of tasks for the active account, by status.",
	},
	[]string{"status"},
)

// RemindersNotifiedTotal counts reminder notifications actually delivered to
// the display layer (after the permission gate and dedup check).
var RemindersNotifiedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminders_notified_total",
		Help:      "Total number of reminder notifications delivered.",
	},
)

// RemindersDedupTotal counts deduplication decisions for due reminders.
// Label:
//   - result: "hit" (already notified, suppressed) or "miss" (new, notified)
var RemindersDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminders_dedup_total",
		Help:      "Total number of reminder dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// UpcomingReminders tracks the size of the upcoming-reminders indicator
// (non-completed tasks with a reminder inside the informational window).
var UpcomingReminders = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "upcoming_reminders",
		Help:      "Current number of tasks in the upcoming-reminders window.",
	},
)

// StoreFallbacksTotal counts reads of malformed persisted data that fell
// back to the empty collection.
// Label:
//   - key: the storage key whose value failed to decode
var StoreFallbacksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_fallbacks_total",
		Help:      "Total number of corrupted stored values read as empty collections.",
	},
	[]string{"key"},
)
