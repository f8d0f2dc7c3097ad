// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenService(t *testing.T) {
	service := NewTokenService("test-secret", time.Hour)
	userID := uuid.New()
	email := "dana@example.com"

	// Test a generated token validates back to the same claims.
	t.Run("round trips claims through a signed token", func(t *testing.T) {
		token, err := service.GenerateAccessToken(context.Background(), userID, email)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if token == "" {
			t.Fatal("expected a non-empty token")
		}

		claims, err := service.ValidateAccessToken(context.Background(), token)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
		}
		if claims.Email != email {
			t.Errorf("expected email %s, got %s", email, claims.Email)
		}
		if !claims.ExpiresAt.After(time.Now()) {
			t.Error("expected the token to expire in the future")
		}
	})

	// Test a token signed with another secret is rejected.
	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := NewTokenService("other-secret", time.Hour)
		token, err := other.GenerateAccessToken(context.Background(), userID, email)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if _, err := service.ValidateAccessToken(context.Background(), token); err == nil {
			t.Error("expected validation to fail for a foreign signature")
		}
	})

	// Test a tampered token is rejected.
	t.Run("rejects a tampered token", func(t *testing.T) {
		token, err := service.GenerateAccessToken(context.Background(), userID, email)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		tampered := token[:len(token)-2] + "xx"
		if _, err := service.ValidateAccessToken(context.Background(), tampered); err == nil {
			t.Error("expected validation to fail for a tampered token")
		}
	})

	// Test an expired token is rejected.
	t.Run("rejects an expired token", func(t *testing.T) {
		expired := NewTokenService("test-secret", -time.Minute)
		token, err := expired.GenerateAccessToken(context.Background(), userID, email)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if _, err := service.ValidateAccessToken(context.Background(), token); err == nil {
			t.Error("expected validation to fail for an expired token")
		}
	})

	// Test garbage input is rejected.
	t.Run("rejects garbage input", func(t *testing.T) {
		if _, err := service.ValidateAccessToken(context.Background(), "not.a.token"); err == nil {
			t.Error("expected validation to fail for garbage input")
		}
	})
}
