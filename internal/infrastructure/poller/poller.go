// Package poller drives the reminder scans on two independent cadences: a
// short one for due notifications and a longer one for the upcoming
// indicator. The poller owns no interval ambiently — it starts with the app
// context and stops with it.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/brightlist/task-system/internal/core/domain"
	"github.com/brightlist/task-system/internal/core/service"
	"github.com/brightlist/task-system/internal/infrastructure/metrics"
)

const (
	defaultDueInterval      = 60 * time.Second
	defaultUpcomingInterval = 5 * time.Minute
	defaultDueWindow        = 5 * time.Minute
	defaultUpcomingWindow   = 24 * time.Hour
)

// Source supplies the current task list for a scan.
type Source interface {
	List(ctx context.Context) ([]domain.Task, error)
}

// Options controls scan cadences and windows. Zero values fall back to the
// defaults above.
type Options struct {
	DueInterval      time.Duration
	UpcomingInterval time.Duration
	DueWindow        time.Duration
	UpcomingWindow   time.Duration
	// OnUpcoming, when set, receives each refreshed upcoming-reminders
	// subset — the hook the display indicator hangs off.
	OnUpcoming func([]domain.Task)
}

// Poller runs the due and upcoming scans until its context is cancelled or
// Stop is called.
type Poller struct {
	source    Source
	reminders *service.ReminderService
	opts      Options
	log       zerolog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(source Source, reminders *service.ReminderService, opts Options, log zerolog.Logger) *Poller {
	if opts.DueInterval <= 0 {
		opts.DueInterval = defaultDueInterval
	}
	if opts.UpcomingInterval <= 0 {
		opts.UpcomingInterval = defaultUpcomingInterval
	}
	if opts.DueWindow <= 0 {
		opts.DueWindow = defaultDueWindow
	}
	if opts.UpcomingWindow <= 0 {
		opts.UpcomingWindow = defaultUpcomingWindow
	}
	return &Poller{source: source, reminders: reminders, opts: opts, log: log}
}

// Start launches both scan loops. Each runs one scan immediately (matching
// the app-load behaviour) and then on its ticker until ctx is cancelled.
func (p *Poller) Start(ctx context.Context) {
	ctx, p.cancel = context.WithCancel(ctx)

	p.wg.Add(2)
	go p.run(ctx, p.opts.DueInterval, p.scanDue)
	go p.run(ctx, p.opts.UpcomingInterval, p.refreshUpcoming)
}

// Stop cancels the scan loops and waits for them to drain. Safe to call
// when Start was never called.
func (p *Poller) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

func (p *Poller) run(ctx context.Context, interval time.Duration, scan func(context.Context)) {
	defer p.wg.Done()

	scan(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			scan(ctx)
		}
	}
}

func (p *Poller) scanDue(ctx context.Context) {
	tasks, err := p.source.List(ctx)
	if err != nil {
		p.log.Warn().Err(err).Msg("due scan: listing tasks failed")
		return
	}

	pending := 0
	for _, t := range tasks {
		if t.Status == domain.StatusPending {
			pending++
		}
	}
	metrics.TasksByStatus.WithLabelValues(string(domain.StatusPending)).Set(float64(pending))
	metrics.TasksByStatus.WithLabelValues(string(domain.StatusCompleted)).Set(float64(len(tasks) - pending))

	due := p.reminders.ScanDue(ctx, tasks, time.Now().UTC(), p.opts.DueWindow)
	if len(due) > 0 {
		p.log.Debug().Int("count", len(due)).Msg("due reminders scanned")
	}
}

func (p *Poller) refreshUpcoming(ctx context.Context) {
	tasks, err := p.source.List(ctx)
	if err != nil {
		p.log.Warn().Err(err).Msg("upcoming refresh: listing tasks failed")
		return
	}

	upcoming := service.UpcomingWithin(tasks, time.Now().UTC(), p.opts.UpcomingWindow)
	metrics.UpcomingReminders.Set(float64(len(upcoming)))
	if p.opts.OnUpcoming != nil {
		p.opts.OnUpcoming(upcoming)
	}
}
