package connection

import (
	"context"
	"fmt"
	"time"

	"randevuapi/model"

	"github.com/redis/go-redis/v9"
)

// RedisConnection opens the client backing the shared rate-limit store.
func RedisConnection(cfg model.RateLimitConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
	}
	return rdb, nil
}
