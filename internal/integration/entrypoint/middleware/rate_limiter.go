package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/hamsacorp/expense-backend/internal/domain/error"
	"github.com/hamsacorp/expense-backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute

	rateLimitKeyPrefix = "ratelimit:login:"
)

// RateLimiter provides IP-based rate limiting backed by redis, so the limit
// holds across instances. On redis failure the request is allowed through.
type RateLimiter struct {
	client         *redis.Client
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a new rate limiter with default settings.
func NewRateLimiter(client *redis.Client) *RateLimiter {
	return NewRateLimiterWithConfig(client, defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a new rate limiter with custom settings.
func NewRateLimiterWithConfig(client *redis.Client, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		client:         client,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.allow(c, clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow checks if a request from the given key should be allowed. It uses a
// fixed window: INCR on the key, EXPIRE set when the window opens.
func (rl *RateLimiter) allow(c *gin.Context, key string) bool {
	ctx := c.Request.Context()
	redisKey := rateLimitKeyPrefix + key

	count, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		slog.Warn("Rate limiter unavailable, allowing request", "error", err)
		return true
	}

	if count == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			slog.Warn("Failed to set rate limit window", "key", redisKey, "error", err)
		}
	}

	return count <= int64(rl.maxAttempts)
}

// Reset clears the rate limiter state for a key (useful for testing).
func (rl *RateLimiter) Reset(c *gin.Context, key string) error {
	if err := rl.client.Del(c.Request.Context(), rateLimitKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit: %w", err)
	}
	return nil
}
