package dedup

import (
	"context"
	"testing"
	"time"
)

func TestMemory_MarkThenDuplicate(t *testing.T) {
	d := NewMemory(time.Hour)
	ctx := context.Background()
	at := time.Now().UTC().Add(3 * time.Minute)

	dup, err := d.IsDuplicate(ctx, "task-1", at)
	if err != nil || dup {
		t.Fatalf("unmarked reminder must not be a duplicate, got dup=%v err=%v", dup, err)
	}

	if err := d.Mark(ctx, "task-1", at); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	dup, err = d.IsDuplicate(ctx, "task-1", at)
	if err != nil || !dup {
		t.Fatalf("marked reminder must be a duplicate, got dup=%v err=%v", dup, err)
	}

	// A different reminder timestamp on the same task is a new reminder.
	if dup, _ := d.IsDuplicate(ctx, "task-1", at.Add(time.Minute)); dup {
		t.Fatalf("different timestamp must not be a duplicate")
	}
	// Same timestamp on another task is independent.
	if dup, _ := d.IsDuplicate(ctx, "task-2", at); dup {
		t.Fatalf("different task must not be a duplicate")
	}
}

func TestMemory_MarksExpire(t *testing.T) {
	d := NewMemory(time.Nanosecond)
	ctx := context.Background()
	at := time.Now().UTC()

	if err := d.Mark(ctx, "task-1", at); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	time.Sleep(time.Millisecond)
	if dup, _ := d.IsDuplicate(ctx, "task-1", at); dup {
		t.Fatalf("expired mark must not count as duplicate")
	}
}
