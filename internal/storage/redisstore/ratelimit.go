package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const rateLimitPrefix = "ratelimit:"

// FixedWindowLimiter counts hits per key in fixed windows.
type FixedWindowLimiter struct {
	rdb *redis.Client
}

// NewFixedWindowLimiter creates a new FixedWindowLimiter.
func NewFixedWindowLimiter(rdb *redis.Client) *FixedWindowLimiter {
	return &FixedWindowLimiter{rdb: rdb}
}

// Allow records a hit for key and reports whether it is within limit for the
// current window. Each window has its own counter, which expires with it.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	windowStart := time.Now().Truncate(window).Unix()
	redisKey := fmt.Sprintf("%s%s:%d", rateLimitPrefix, key, windowStart)

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit %s: %w", key, err)
	}
	return incr.Val() <= int64(limit), nil
}
