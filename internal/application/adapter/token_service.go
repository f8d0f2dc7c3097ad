package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the validated claims extracted from a token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService defines token generation and validation operations.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID uuid.UUID, email string) (string, error)
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
