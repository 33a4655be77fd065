package redis_limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisLimiter fixed-window attempt counter backed by Redis
type RedisLimiter struct {
	client      *redis.Client
	maxAttempts int
	keyPrefix   string
	window      time.Duration
}

// NewRedisLimiter creates a limiter allowing maxAttempts per key within window
func NewRedisLimiter(client *redis.Client, maxAttempts int, keyPrefix string, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		keyPrefix:   keyPrefix,
		window:      window,
	}
}

// hitScript increments the counter and starts the window on the first hit.
// Returns the counter after the increment.
var hitScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('EXPIRE', KEYS[1], tonumber(ARGV[1]))
end
return count`)

// Allow records an attempt for key and reports whether it is within the limit
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	seconds := int(rl.window.Seconds())
	if seconds < 1 {
		seconds = 1
	}

	result, err := hitScript.Run(ctx, rl.client, []string{rl.keyPrefix + key}, seconds).Result()
	if err != nil {
		return false, fmt.Errorf("run limiter script: %w", err)
	}

	count, ok := result.(int64)
	if !ok {
		return false, fmt.Errorf("unexpected limiter result %T", result)
	}
	return count <= int64(rl.maxAttempts), nil
}

// Reset clears the attempts recorded for key
func (rl *RedisLimiter) Reset(ctx context.Context, key string) error {
	if err := rl.client.Del(ctx, rl.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("reset limiter: %w", err)
	}
	return nil
}

// GetCurrent returns the attempts recorded for key in the current window
func (rl *RedisLimiter) GetCurrent(ctx context.Context, key string) (int, error) {
	current, err := rl.client.Get(ctx, rl.keyPrefix+key).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read limiter counter: %w", err)
	}
	return current, nil
}

// GetMaxAttempts returns the per-window limit
func (rl *RedisLimiter) GetMaxAttempts() int {
	return rl.maxAttempts
}
