// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hamsacorp/expense-backend/internal/application/adapter"
	domainerror "github.com/hamsacorp/expense-backend/internal/domain/error"
	"github.com/hamsacorp/expense-backend/internal/integration/entrypoint/dto"
)

// Context keys under which Authenticate stores the caller's identity. Read
// them back through GetUserIDFromContext and GetUserEmailFromContext.
const (
	ctxUserID    = "auth.user_id"
	ctxUserEmail = "auth.user_email"
)

// AuthMiddleware guards routes behind bearer-token authentication.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate validates the Authorization header and, on success, stores the
// token's user ID and email on the request context for downstream handlers.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, errCode, errMsg := bearerToken(c)
		if token == "" {
			reject(c, errCode, errMsg)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			reject(c, domainerror.ErrCodeInvalidToken, "Invalid or expired token")
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserEmail, claims.Email)

		c.Next()
	}
}

// bearerToken pulls the token out of the Authorization header. An empty
// token return carries the error code and message to reject with.
func bearerToken(c *gin.Context) (token string, errCode domainerror.AuthErrorCode, errMsg string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", domainerror.ErrCodeMissingToken, "Authorization header is required"
	}
	if !strings.HasPrefix(header, "Bearer ") {
		return "", domainerror.ErrCodeInvalidToken, "Invalid authorization header format"
	}
	token = strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", domainerror.ErrCodeMissingToken, "Token is required"
	}
	return token, "", ""
}

func reject(c *gin.Context, code domainerror.AuthErrorCode, message string) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
	c.Abort()
}

// GetUserIDFromContext extracts the authenticated user's ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ctxUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}

// GetUserEmailFromContext extracts the authenticated user's email from the Gin context.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(ctxUserEmail)
	if !exists {
		return "", false
	}
	email, ok := value.(string)
	return email, ok
}
