// Package cache keeps short lived auth state in Redis: revoked refresh tokens and
// fixed window request counters.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	blacklistPrefix = "auth:bl:"
	rateLimitPrefix = "ratelimit:"
)

// TokenBlacklist records refresh token ids that may no longer be used.
type TokenBlacklist interface {
	// Add blacklists jti until ttl elapses. It reports false when jti was already present.
	Add(ctx context.Context, jti string, ttl time.Duration) (bool, error)
	Contains(ctx context.Context, jti string) (bool, error)
}

type redisBlacklist struct {
	rdb *redis.Client
}

func NewTokenBlacklist(rdb *redis.Client) TokenBlacklist {
	return &redisBlacklist{rdb: rdb}
}

func (b *redisBlacklist) Add(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		// already expired, the token is unusable anyway
		ttl = time.Second
	}
	ok, err := b.rdb.SetNX(ctx, blacklistPrefix+jti, 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("blacklist %s: %w", jti, err)
	}
	return ok, nil
}

func (b *redisBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	n, err := b.rdb.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check blacklist %s: %w", jti, err)
	}
	return n > 0, nil
}

// RateLimiter counts hits per key in fixed windows.
type RateLimiter interface {
	// Allow registers a hit for key and reports whether it is within limit, plus the hits left.
	Allow(ctx context.Context, key string) (allowed bool, remaining int, err error)
}

type redisRateLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration) RateLimiter {
	return &redisRateLimiter{rdb: rdb, limit: limit, window: window}
}

func (l *redisRateLimiter) Allow(ctx context.Context, key string) (bool, int, error) {
	k := rateLimitPrefix + key

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	// NX keeps the window anchored at the first hit
	pipe.ExpireNX(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("rate limit %s: %w", key, err)
	}

	count := int(incr.Val())
	if count > l.limit {
		return false, 0, nil
	}
	return true, l.limit - count, nil
}
