package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"job-board-backend/internal/delivery/http/response"
	"job-board-backend/internal/domain"
	"job-board-backend/pkg/logger"
	"job-board-backend/pkg/metrics"
	"job-board-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis, also the metric label
	KeyPrefix string
	// Reject instead of falling back to memory when Redis errors
	FailClosed bool
}

// fixedWindow is one in-memory counter.
type fixedWindow struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	windows     sync.Map // key -> *fixedWindow
	cleanupOnce sync.Once
)

// INCR with TTL on first hit. Returns {count, ttl_seconds}.
var incrWindow = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return {count, redis.call('TTL', KEYS[1])}
`)

func sweepExpiredWindows() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for now := range ticker.C {
			windows.Range(func(key, value any) bool {
				w := value.(*fixedWindow)
				w.mu.Lock()
				if now.After(w.resetAt) {
					windows.Delete(key)
				}
				w.mu.Unlock()
				return true
			})
		}
	}()
}

// DefaultRateLimitConfig limits every client IP to limit requests per window.
func DefaultRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// WriteRateLimitConfig limits application submissions and status changes per
// authenticated user, falling back to the client IP before auth has run.
func WriteRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:     30,
		Window:    time.Minute,
		KeyPrefix: "rl:write:",
		KeyFunc: func(c *gin.Context) string {
			if user, ok := CurrentUser(c); ok {
				return "user:" + strconv.FormatInt(user.ID, 10)
			}
			return c.ClientIP()
		},
	}
}

// RegisterRateLimitConfig limits account creation per client IP.
func RegisterRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:     10,
		Window:    time.Hour,
		KeyPrefix: "rl:register:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// GlobalRateLimitMiddleware applies per-IP limiting to all routes
func GlobalRateLimitMiddleware(limit int, window time.Duration) gin.HandlerFunc {
	return RateLimitMiddleware(DefaultRateLimitConfig(limit, window))
}

// RateLimitMiddleware counts requests per key in a fixed window. Redis is used
// when connected so limits hold across instances; otherwise counters live in
// process memory.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	cleanupOnce.Do(sweepExpiredWindows)

	return func(c *gin.Context) {
		key := config.KeyPrefix + config.KeyFunc(c)

		count, resetAt, err := hit(c.Request.Context(), key, config)
		if err != nil {
			logger.Log.Error("rate limit backend failure",
				"error", err, "ip", c.ClientIP(), "request_id", c.GetString(string(domain.KeyRequestID)))
			if config.FailClosed {
				response.Abort(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.")
				return
			}
			count, resetAt = hitInMemory(key, config.Window, time.Now())
		}

		remaining := max(config.Limit-count, 0)
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := max(int(time.Until(resetAt).Seconds()), 1)
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			metrics.RateLimitedTotal.WithLabelValues(config.KeyPrefix).Inc()
			logger.Log.Warn("rate limit triggered",
				"key", key,
				"ip", c.ClientIP(),
				"path", c.FullPath(),
				"request_id", c.GetString(string(domain.KeyRequestID)),
			)
			response.Abort(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		c.Next()
	}
}

// hit counts one request against key, in Redis when a client is connected.
func hit(ctx context.Context, key string, config RateLimitConfig) (int, time.Time, error) {
	client := redis.Client()
	if client == nil {
		count, resetAt := hitInMemory(key, config.Window, time.Now())
		return count, resetAt, nil
	}

	res, err := incrWindow.Run(ctx, client, []string{key}, int(config.Window.Seconds())).Int64Slice()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit: %w", err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, fmt.Errorf("redis rate limit: unexpected reply %v", res)
	}
	return int(res[0]), time.Now().Add(time.Duration(res[1]) * time.Second), nil
}

func hitInMemory(key string, window time.Duration, now time.Time) (int, time.Time) {
	v, _ := windows.LoadOrStore(key, &fixedWindow{resetAt: now.Add(window)})
	w := v.(*fixedWindow)

	w.mu.Lock()
	defer w.mu.Unlock()

	if now.After(w.resetAt) {
		w.count = 0
		w.resetAt = now.Add(window)
	}
	w.count++
	return w.count, w.resetAt
}
