package ratelimit

import (
	"context"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMemoryStore_CountsWithinWindow(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
	s := NewMemoryStore(24*time.Hour, WithClock(clock.Now))

	var w Window
	for i := 0; i < 3; i++ {
		w, _ = s.Hit(context.Background(), "10.0.0.1")
		clock.Advance(time.Hour)
	}
	if w.Count != 3 {
		t.Fatalf("expected count 3, got %d", w.Count)
	}
	want := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	if !w.ResetAt.Equal(want) {
		t.Fatalf("expected window anchored at first hit (%s), got %s", want, w.ResetAt)
	}
}

func TestMemoryStore_KeysAreIndependent(t *testing.T) {
	s := NewMemoryStore(time.Hour)

	_, _ = s.Hit(context.Background(), "a")
	_, _ = s.Hit(context.Background(), "a")
	w, _ := s.Hit(context.Background(), "b")
	if w.Count != 1 {
		t.Fatalf("expected fresh window for key b, got %d", w.Count)
	}
}

func TestMemoryStore_ResetsAfterWindow(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewMemoryStore(24*time.Hour, WithClock(clock.Now))

	for i := 0; i < 5; i++ {
		_, _ = s.Hit(context.Background(), "k")
	}
	clock.Advance(24 * time.Hour)

	w, _ := s.Hit(context.Background(), "k")
	if w.Count != 1 {
		t.Fatalf("expected count to restart at 1, got %d", w.Count)
	}
}

func TestMemoryStore_SweepRemovesExpired(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	s := NewMemoryStore(time.Minute, WithClock(clock.Now))

	_, _ = s.Hit(context.Background(), "old")
	clock.Advance(2 * time.Minute)
	_, _ = s.Hit(context.Background(), "new")

	if n := s.Sweep(); n != 1 {
		t.Fatalf("expected 1 removed, got %d", n)
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 remaining entry, got %d", s.Len())
	}
}
