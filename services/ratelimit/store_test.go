package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

type errStore struct{}

func (errStore) Hit(context.Context, string) (Window, error) {
	return Window{}, errors.New("down")
}

func TestLimiter_RejectsAfterMax(t *testing.T) {
	l := Limiter{Store: NewMemoryStore(24 * time.Hour), Max: 10, Window: 24 * time.Hour}

	for i := 1; i <= 10; i++ {
		dec, err := l.Decide(context.Background(), "1.2.3.4")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !dec.Allowed {
			t.Fatalf("expected hit %d to be allowed", i)
		}
		if dec.Remaining != 10-i {
			t.Fatalf("expected remaining %d, got %d", 10-i, dec.Remaining)
		}
	}

	dec, _ := l.Decide(context.Background(), "1.2.3.4")
	if dec.Allowed {
		t.Fatalf("expected 11th hit to be rejected")
	}
	if dec.Remaining != 0 {
		t.Fatalf("expected remaining 0, got %d", dec.Remaining)
	}
	if dec.Limit != 10 {
		t.Fatalf("expected limit 10, got %d", dec.Limit)
	}
}

func TestLimiter_PropagatesStoreError(t *testing.T) {
	l := Limiter{Store: errStore{}, Max: 1}
	if _, err := l.Decide(context.Background(), "k"); err == nil {
		t.Fatalf("expected error")
	}
}
