// Package ratelimit counts hits per client key inside a fixed window that
// starts at the first hit and resets once it elapses.
//
// The HTTP side lives in middleware.RateLimit; this package only knows keys,
// windows and decisions. Counter storage is pluggable through Store:
//
//   - MemoryStore: single process, swept by the scheduler
//   - RedisStore: shared between instances, expiry handled by Redis
package ratelimit
