package kv

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile", "taskboard.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("absent key: expected ok=false, got ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "accounts", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(ctx, "accounts", `[{"id":"2"}]`); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	v, ok, err := s.Get(ctx, "accounts")
	if err != nil || !ok || v != `[{"id":"2"}]` {
		t.Fatalf("expected upserted value, got %q ok=%v err=%v", v, ok, err)
	}
	if err := s.Delete(ctx, "accounts"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskboard.db")
	ctx := context.Background()

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	if err := s.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()
	v, ok, err := s.Get(ctx, "theme")
	if err != nil || !ok || v != "dark" {
		t.Fatalf("expected persisted value, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	if _, err := OpenSQLite(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
