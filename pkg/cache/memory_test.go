//go:build !integration

package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := NewMemoryWithClock(func() time.Time { return now })
	ctx := context.Background()

	if err := c.Set(ctx, "associations", []byte(`[1,2]`), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := c.Get(ctx, "associations")
	if err != nil || !ok {
		t.Fatalf("expected fresh hit, got ok=%v err=%v", ok, err)
	}
	if string(got) != `[1,2]` {
		t.Errorf("unexpected value %q", got)
	}

	// one second before expiry the entry is still fresh
	now = now.Add(time.Hour - time.Second)
	if _, ok, _ := c.Get(ctx, "associations"); !ok {
		t.Error("entry expired before TTL elapsed")
	}

	// past the absolute expiry it is a miss
	now = now.Add(2 * time.Second)
	if _, ok, _ := c.Get(ctx, "associations"); ok {
		t.Error("entry survived past TTL")
	}
}

func TestMemoryMissOnUnknownKey(t *testing.T) {
	c := NewMemory()

	if _, ok, err := c.Get(context.Background(), "nope"); ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}
}

func TestMemoryOverwriteAndDelete(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	if err := c.Set(ctx, "k", []byte("old"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Set(ctx, "k", []byte("new"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, _ := c.Get(ctx, "k")
	if !ok || string(got) != "new" {
		t.Fatalf("last write should win, got ok=%v value=%q", ok, got)
	}

	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k"); ok {
		t.Error("deleted key still present")
	}
}
