package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindow increments KEYS[1] and starts its TTL on the first hit.
// ARGV[1] = window in seconds. Returns {count, ttl_remaining}.
var fixedWindow = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`)

// Counter is a fixed-window request counter shared by every server instance.
type Counter struct {
	client redis.Scripter
	pinger interface {
		Ping(ctx context.Context) *redis.StatusCmd
	}
}

// NewCounter wraps a connected client.
func NewCounter(client *redis.Client) *Counter {
	return &Counter{client: client, pinger: client}
}

// Incr counts one hit for key and reports the running total and when the window resets.
func (c *Counter) Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	result, err := fixedWindow.Run(ctx, c.client, []string{key}, int(window.Seconds())).Int64Slice()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}
	if len(result) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	ttl := time.Duration(result[1]) * time.Second
	if ttl < 0 {
		ttl = window
	}
	return int(result[0]), time.Now().Add(ttl), nil
}

// Ping checks the connection.
func (c *Counter) Ping(ctx context.Context) error {
	return c.pinger.Ping(ctx).Err()
}
