package kv

import (
	"context"
	"testing"
)

func TestMemory_GetSetDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, ok, err := m.Get(ctx, "missing"); ok || err != nil {
		t.Fatalf("absent key: expected ok=false, got ok=%v err=%v", ok, err)
	}

	if err := m.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, ok, err := m.Get(ctx, "theme")
	if err != nil || !ok || v != "dark" {
		t.Fatalf("expected dark, got %q ok=%v err=%v", v, ok, err)
	}

	if err := m.Set(ctx, "theme", "light"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	if v, _, _ := m.Get(ctx, "theme"); v != "light" {
		t.Fatalf("expected overwritten value, got %q", v)
	}

	if err := m.Delete(ctx, "theme"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "theme"); ok {
		t.Fatalf("expected key gone after delete")
	}
	// Deleting twice is fine.
	if err := m.Delete(ctx, "theme"); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
}
