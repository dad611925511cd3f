package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares windows between instances. Each key is a counter
// whose TTL is set on the first hit of the window.
type RedisStore struct {
	rdb    redis.Cmdable
	window time.Duration
	prefix string
}

type RedisOption func(*RedisStore)

func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if p := strings.Trim(prefix, ":"); p != "" {
			s.prefix = p
		}
	}
}

func NewRedisStore(rdb redis.Cmdable, window time.Duration, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		rdb:    rdb,
		window: window,
		prefix: "ratelimit:randevu",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hit implements Store.
func (s *RedisStore) Hit(ctx context.Context, key string) (Window, error) {
	k := s.prefix + ":" + key

	var (
		incr *redis.IntCmd
		pttl *redis.DurationCmd
	)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pttl = pipe.PTTL(ctx, k)
		return nil
	})
	if err != nil {
		return Window{}, fmt.Errorf("redis hit %q: %w", k, err)
	}

	left := pttl.Val()
	if left <= 0 {
		// first hit of the window (or a key left without TTL)
		if err := s.rdb.PExpire(ctx, k, s.window).Err(); err != nil {
			return Window{}, fmt.Errorf("redis expire %q: %w", k, err)
		}
		left = s.window
	}

	return Window{Count: int(incr.Val()), ResetAt: time.Now().Add(left)}, nil
}
