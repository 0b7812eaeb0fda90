package ratelimit

import (
	"context"
	"fmt"
	"time"

	"instacar/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:lookup:%s"

// RedisLimiter is a fixed-window counter keyed by caller identity:
// INCR on first hit sets the window TTL, and the caller is refused once
// the count passes the threshold. Window state lives in Redis so the
// limit holds across API instances.

type RedisLimiter struct {
	rdb       *redis.Client
	threshold int64
	window    time.Duration
}

var _ interfaces.IRateLimiter = (*RedisLimiter)(nil)

func NewRedisLimiter(rdb *redis.Client, threshold int64, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, threshold: threshold, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := fmt.Sprintf(keyPrefix, key)
	n, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := l.rdb.Expire(ctx, k, l.window).Err(); err != nil {
			return false, err
		}
	}
	return n <= l.threshold, nil
}
