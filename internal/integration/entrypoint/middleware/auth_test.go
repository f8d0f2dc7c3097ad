// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hamsacorp/expense-backend/internal/integration/adapters"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tokenService := adapters.NewTokenService("test-secret", time.Hour)
	authMiddleware := NewAuthMiddleware(tokenService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", authMiddleware.Authenticate(), func(c *gin.Context) {
		email, ok := GetUserEmailFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": email})
	})

	request := func(authHeader string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		router.ServeHTTP(w, req)
		return w
	}

	// Test a valid bearer token passes and exposes the claims.
	t.Run("accepts a valid bearer token", func(t *testing.T) {
		token, err := tokenService.GenerateAccessToken(context.Background(), uuid.New(), "dana@example.com")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		w := request("Bearer " + token)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
	})

	// Test the missing header is refused.
	t.Run("rejects a missing header", func(t *testing.T) {
		w := request("")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	// Test a non-bearer scheme is refused.
	t.Run("rejects a non-bearer scheme", func(t *testing.T) {
		w := request("Basic Zm9vOmJhcg==")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	// Test a forged token is refused.
	t.Run("rejects an invalid token", func(t *testing.T) {
		w := request("Bearer not-a-real-token")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}
