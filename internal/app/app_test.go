package app

import (
	"context"
	"testing"

	"github.com/brightlist/task-system/internal/core/domain"
	"github.com/brightlist/task-system/internal/core/ports"
	"github.com/brightlist/task-system/internal/infrastructure/config"
)

func newMemoryConfig() *config.Config {
	return &config.Config{
		LogLevel:      "error",
		Storage:       config.StorageConfig{Driver: config.DriverMemory},
		Notifications: config.NotifyConfig{Permission: "denied"},
	}
}

func TestApp_Lifecycle(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, newMemoryConfig(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := a.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer func() {
		if err := a.Stop(); err != nil {
			t.Fatalf("Stop failed: %v", err)
		}
	}()

	if a.Session() != nil {
		t.Fatalf("fresh profile must start logged out")
	}
	if a.Theme() != domain.ThemeLight {
		t.Fatalf("fresh profile must default to light theme, got %q", a.Theme())
	}

	account, err := a.Accounts().Signup(ctx, ports.SignupInput{
		Name: "Ann", Email: "ann@x.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if account.Password != "" {
		t.Fatalf("signup result must be sanitized")
	}

	if _, err := a.Tasks().Create(ctx, ports.CreateTaskInput{
		Title: "Buy milk", Category: domain.CategoryShopping,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	stats, err := a.Tasks().Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats != (domain.Stats{Total: 1, Completed: 0, Pending: 1}) {
		t.Fatalf("expected {1 0 1}, got %+v", stats)
	}

	if err := a.SetTheme(ctx, domain.ThemeDark); err != nil {
		t.Fatalf("SetTheme failed: %v", err)
	}
	if a.Theme() != domain.ThemeDark {
		t.Fatalf("expected dark theme, got %q", a.Theme())
	}
}

func TestApp_RestoresSessionOnStart(t *testing.T) {
	ctx := context.Background()
	a, err := New(ctx, newMemoryConfig(), nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := a.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if _, err := a.Accounts().Signup(ctx, ports.SignupInput{
		Name: "Ann", Email: "ann@x.com", Password: "secret1",
	}); err != nil {
		t.Fatalf("Signup failed: %v", err)
	}

	// A restart against the same substrate picks the session back up.
	a.poller.Stop()
	if err := a.Start(ctx); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	defer a.Stop()

	session := a.Session()
	if session == nil || session.Email != "ann@x.com" {
		t.Fatalf("expected restored session for ann@x.com, got %+v", session)
	}
	if session.Password != "" {
		t.Fatalf("restored session must be sanitized")
	}
}

func TestApp_UnknownDriver(t *testing.T) {
	cfg := newMemoryConfig()
	cfg.Storage.Driver = "flatfile"
	if _, err := New(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error for unknown storage driver")
	}
}
