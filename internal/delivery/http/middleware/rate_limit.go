package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"cleanpro-web/internal/delivery/http/response"
	"cleanpro-web/pkg/audit"
	"cleanpro-web/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Counter is a shared fixed-window counter, typically backed by Redis.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int, time.Time, error)
}

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix in the shared store
	KeyPrefix string
	// Shared counter; nil means in-memory only
	Counter Counter
	// In-memory counter used when Counter is nil or failing. Pass the same one to
	// every middleware that should count together; nil gives this middleware its own.
	Memory *MemoryCounter
	// HTML routes get a plain text body instead of the JSON envelope
	PlainText bool
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
}

// MemoryCounter is the per-process fallback used when the shared counter is absent or failing.
type MemoryCounter struct {
	mu        sync.Mutex
	entries   map[string]*rateLimitEntry
	lastSweep time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{entries: make(map[string]*rateLimitEntry)}
}

// Incr implements Counter.
func (m *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int, time.Time, error) {
	count, resetAt := m.incr(key, window, time.Now())
	return count, resetAt, nil
}

func (m *MemoryCounter) incr(key string, window time.Duration, now time.Time) (int, time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Expired entries are dropped at most once per window, on the request path.
	if now.Sub(m.lastSweep) > window {
		for k, e := range m.entries {
			if now.After(e.resetAt) {
				delete(m.entries, k)
			}
		}
		m.lastSweep = now
	}

	entry, ok := m.entries[key]
	if !ok || now.After(entry.resetAt) {
		entry = &rateLimitEntry{resetAt: now.Add(window)}
		m.entries[key] = entry
	}
	entry.count++
	return entry.count, entry.resetAt
}

// GlobalRateLimitConfig limits every request from one client IP.
func GlobalRateLimitConfig(limit int, window time.Duration, counter Counter) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
		Counter:   counter,
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// ContactRateLimitConfig is the stricter limit on contact submissions.
func ContactRateLimitConfig(limit int, window time.Duration, counter Counter) RateLimitConfig {
	cfg := GlobalRateLimitConfig(limit, window, counter)
	cfg.KeyPrefix = "rl:contact:"
	return cfg
}

// RateLimitMiddleware creates a rate limiting middleware with the given config.
// It uses the shared counter when set and falls back to memory when that fails.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	fallback := config.Memory
	if fallback == nil {
		fallback = NewMemoryCounter()
	}

	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := time.Now()

		var count int
		var resetAt time.Time
		var err error

		if config.Counter != nil {
			count, resetAt, err = config.Counter.Incr(c.Request.Context(), fullKey, config.Window)
			if err != nil {
				logger.Log.Warn("rate limit store unavailable, using memory", "error", err)
				count, resetAt = fallback.incr(fullKey, config.Window, now)
			}
		} else {
			count, resetAt = fallback.incr(fullKey, config.Window, now)
		}

		remaining := config.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			audit.Default().LogRateLimitTriggered(c.Request.Context(),
				c.ClientIP(), c.Request.UserAgent(), c.GetString(RequestIDKey), c.FullPath())

			const msg = "Rate limit exceeded. Please try again later."
			if config.PlainText {
				c.String(http.StatusTooManyRequests, msg)
			} else {
				response.Error(c, http.StatusTooManyRequests, msg, nil)
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
