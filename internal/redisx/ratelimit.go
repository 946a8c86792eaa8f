package redisx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter is a fixed-window counter per client key.
type Limiter struct {
	Redis  *redis.Client
	Max    int
	Window time.Duration
	Now    func() time.Time // test hook
}

func NewOrderLimiter(rdb *redis.Client, perWindow int) *Limiter {
	return &Limiter{Redis: rdb, Max: perWindow, Window: OrderRateWindow}
}

// Allow counts one hit for key. It returns whether the hit is within the limit
// and, when it is not, how long until the window resets.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := time.Now()
	if l.Now != nil {
		now = l.Now()
	}
	window := l.Window
	if window <= 0 {
		window = OrderRateWindow
	}
	start := now.Truncate(window)
	k := fmt.Sprintf(KeyOrderRateLimit, key, start.Unix())

	pipe := l.Redis.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, err
	}
	if l.Max > 0 && incr.Val() > int64(l.Max) {
		return false, start.Add(window).Sub(now), nil
	}
	return true, 0, nil
}
