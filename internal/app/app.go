// Package app wires the stores, services, notifier chain, and reminder
// poller into one application context with an explicit lifecycle. It
// replaces the ambient globals of the original design: the session and theme
// are loaded at Start, not read from module state at call sites.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/brightlist/task-system/internal/core/domain"
	"github.com/brightlist/task-system/internal/core/ports"
	"github.com/brightlist/task-system/internal/core/service"
	"github.com/brightlist/task-system/internal/infrastructure/config"
	"github.com/brightlist/task-system/internal/infrastructure/dedup"
	"github.com/brightlist/task-system/internal/infrastructure/kv"
	"github.com/brightlist/task-system/internal/infrastructure/notify"
	"github.com/brightlist/task-system/internal/infrastructure/poller"
	"github.com/brightlist/task-system/internal/infrastructure/store"
	"github.com/brightlist/task-system/pkg/logger"
)

// App is the application context handed to the presentation layer.
type App struct {
	cfg *config.Config
	log zerolog.Logger

	kv       ports.KV
	settings ports.SettingsRepository

	accounts  ports.AccountService
	tasks     ports.TaskService
	reminders *service.ReminderService
	poller    *poller.Poller

	session *domain.Account
	theme   domain.Theme
}

// New builds the full wiring for the configured storage driver. OnUpcoming,
// when non-nil, receives each refreshed upcoming-reminders subset.
func New(ctx context.Context, cfg *config.Config, onUpcoming func([]domain.Task)) (*App, error) {
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	kvStore, dedupChecker, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	accountRepo := store.NewAccountRepository(kvStore)
	sessionRepo := store.NewSessionRepository(kvStore)
	taskRepo := store.NewTaskRepository(kvStore)
	settingsRepo := store.NewSettingsRepository(kvStore)

	notifier := notify.NewGate(
		notify.ParsePermission(cfg.Notifications.Permission),
		notify.NewLog(log),
		log,
	)
	reminders := service.NewReminderService(notifier, dedupChecker, log)
	accounts := service.NewAccountService(accountRepo, sessionRepo, log)
	tasks := service.NewTaskService(taskRepo, sessionRepo, log)

	p := poller.New(tasks, reminders, poller.Options{
		DueInterval:      cfg.Reminders.DueInterval,
		UpcomingInterval: cfg.Reminders.UpcomingInterval,
		DueWindow:        cfg.Reminders.DueWindow,
		UpcomingWindow:   cfg.Reminders.UpcomingWindow,
		OnUpcoming:       onUpcoming,
	}, log)

	return &App{
		cfg:       cfg,
		log:       log,
		kv:        kvStore,
		settings:  settingsRepo,
		accounts:  accounts,
		tasks:     tasks,
		reminders: reminders,
		poller:    p,
		theme:     domain.ThemeLight,
	}, nil
}

// openStorage constructs the key/value substrate for the configured driver.
// The redis driver doubles as the reminder-dedup backend; every other driver
// gets the in-process checker.
func openStorage(ctx context.Context, cfg *config.Config) (ports.KV, service.DedupChecker, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return kv.NewMemory(), dedup.NewMemory(cfg.Reminders.DueWindow), nil

	case config.DriverSQLite:
		s, err := kv.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, dedup.NewMemory(cfg.Reminders.DueWindow), nil

	case config.DriverRedis:
		client, err := kv.ConnectRedis(ctx, kv.RedisOptions{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, nil, err
		}
		return kv.NewRedis(client), dedup.NewRedis(client, cfg.Reminders.DueWindow), nil

	case config.DriverMongo:
		client, db, err := kv.ConnectMongo(ctx, kv.MongoOptions{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		return kv.NewMongo(client, db), dedup.NewMemory(cfg.Reminders.DueWindow), nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// Start restores the persisted session and theme, then starts the reminder
// poller. This is the single well-defined load point for profile state.
func (a *App) Start(ctx context.Context) error {
	session, err := a.accounts.CurrentSession(ctx)
	if err != nil {
		return err
	}
	a.session = session
	if session != nil {
		a.log.Info().Str("account_id", session.ID).Msg("session restored")
	}

	theme, err := a.settings.Theme(ctx)
	if err != nil {
		return err
	}
	a.theme = theme

	a.poller.Start(ctx)
	return nil
}

// Stop halts the reminder poller and closes the storage substrate.
func (a *App) Stop() error {
	a.poller.Stop()
	return a.kv.Close()
}

// Accounts returns the account service.
func (a *App) Accounts() ports.AccountService { return a.accounts }

// Tasks returns the task service.
func (a *App) Tasks() ports.TaskService { return a.tasks }

// Reminders returns the reminder scanner.
func (a *App) Reminders() *service.ReminderService { return a.reminders }

// Session returns the sanitized account restored at the last Start, or nil.
func (a *App) Session() *domain.Account { return a.session }

// Theme returns the display preference loaded at the last Start or set
// through SetTheme.
func (a *App) Theme() domain.Theme { return a.theme }

// SetTheme persists and caches the display preference.
func (a *App) SetTheme(ctx context.Context, theme domain.Theme) error {
	if err := a.settings.SaveTheme(ctx, theme); err != nil {
		return err
	}
	a.theme = theme
	return nil
}
