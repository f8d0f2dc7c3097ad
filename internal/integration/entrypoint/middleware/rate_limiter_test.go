package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newRateLimitedRouter(t *testing.T, maxAttempts int) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	limiter := NewRateLimiterWithConfig(client, maxAttempts, time.Minute)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, mr
}

func attempt(router *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter(t *testing.T) {
	// Test requests inside the window limit pass through.
	t.Run("allows requests under the limit", func(t *testing.T) {
		router, _ := newRateLimitedRouter(t, 3)

		for i := 0; i < 3; i++ {
			if code := attempt(router); code != http.StatusOK {
				t.Fatalf("attempt %d: expected 200, got %d", i+1, code)
			}
		}
	})

	// Test the request over the limit is refused.
	t.Run("blocks requests over the limit", func(t *testing.T) {
		router, _ := newRateLimitedRouter(t, 3)

		for i := 0; i < 3; i++ {
			attempt(router)
		}

		if code := attempt(router); code != http.StatusTooManyRequests {
			t.Errorf("expected 429, got %d", code)
		}
	})

	// Test the window resets once the key expires.
	t.Run("window expiry resets the count", func(t *testing.T) {
		router, mr := newRateLimitedRouter(t, 1)

		attempt(router)
		if code := attempt(router); code != http.StatusTooManyRequests {
			t.Fatalf("expected 429 before expiry, got %d", code)
		}

		mr.FastForward(2 * time.Minute)

		if code := attempt(router); code != http.StatusOK {
			t.Errorf("expected 200 after expiry, got %d", code)
		}
	})

	// Test a redis outage lets requests through instead of locking users out.
	t.Run("allows requests when redis is down", func(t *testing.T) {
		router, mr := newRateLimitedRouter(t, 1)
		mr.Close()

		for i := 0; i < 3; i++ {
			if code := attempt(router); code != http.StatusOK {
				t.Fatalf("attempt %d: expected 200 during outage, got %d", i+1, code)
			}
		}
	})
}
