package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "rl:"

// Decision is the outcome of one limiter hit.
type Decision struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// FixedWindowLimiter counts hits per key in fixed windows.
// Key format: rl:<key>:<window_start_unix>
type FixedWindowLimiter struct {
	client *redis.Client
	prefix string
	max    int64
	window time.Duration
	now    func() time.Time
}

// NewFixedWindowLimiter allows max hits per key in each window.
func NewFixedWindowLimiter(client *redis.Client, max int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		client: client,
		prefix: defaultPrefix,
		max:    int64(max),
		window: window,
		now:    time.Now,
	}
}

// Allow records a hit for key and reports whether it is within the limit.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	start := l.now().UTC().Truncate(l.window)
	redisKey := fmt.Sprintf("%s%s:%d", l.prefix, strings.ReplaceAll(key, " ", "_"), start.Unix())

	hits, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit: %w", err)
	}
	// first hit in the window owns the expiry
	if hits == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return Decision{}, fmt.Errorf("rate limit expire: %w", err)
		}
	}

	d := Decision{Allowed: hits <= l.max, Remaining: l.max - hits}
	if d.Remaining < 0 {
		d.Remaining = 0
	}
	if !d.Allowed {
		d.RetryAfter = start.Add(l.window).Sub(l.now().UTC())
		if d.RetryAfter < time.Second {
			d.RetryAfter = time.Second
		}
	}
	return d, nil
}
