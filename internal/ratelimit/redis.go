package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "rl:"

// RedisStore shares counters across processes. Fixed-window semantics:
// INCR plus a conditional EXPIRE set on the first hit of each window.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Hit implements Store.
func (s *RedisStore) Hit(ctx context.Context, key string, window time.Duration) (Result, error) {
	fullKey := redisKeyPrefix + key

	count, err := s.client.Incr(ctx, fullKey).Result()
	if err != nil {
		return Result{}, err
	}
	if count == 1 {
		if err := s.client.PExpire(ctx, fullKey, window).Err(); err != nil {
			return Result{}, err
		}
	}

	ttl, err := s.client.PTTL(ctx, fullKey).Result()
	if err != nil || ttl < 0 {
		ttl = window
	}
	return Result{Count: count, ResetAt: time.Now().Add(ttl)}, nil
}
