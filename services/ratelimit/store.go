package ratelimit

import (
	"context"
	"time"
)

// Window is the state of one key after a hit.
type Window struct {
	Count   int
	ResetAt time.Time
}

// Store records a hit for key and returns the updated window.
type Store interface {
	Hit(ctx context.Context, key string) (Window, error)
}

type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Limiter applies the ceiling to the windows kept by Store.
type Limiter struct {
	Store  Store
	Max    int
	Window time.Duration
}

func (l Limiter) Decide(ctx context.Context, key string) (Decision, error) {
	w, err := l.Store.Hit(ctx, key)
	if err != nil {
		return Decision{}, err
	}

	remaining := l.Max - w.Count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   w.Count <= l.Max,
		Limit:     l.Max,
		Remaining: remaining,
		ResetAt:   w.ResetAt,
	}, nil
}
