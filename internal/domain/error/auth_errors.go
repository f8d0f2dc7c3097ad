// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Auth domain errors.
var (
	// ErrEmailAlreadyExists is returned when registering with an email that is taken.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrInvalidCredentials is returned when login credentials do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when no user exists for the given identifier.
	ErrUserNotFound = errors.New("user not found")

	// ErrWeakPassword is returned when a password fails the strength check.
	ErrWeakPassword = errors.New("password must be at least 8 characters long")

	// ErrInvalidEmail is returned when an email fails format validation.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrMissingToken is returned when a request carries no bearer token.
	ErrMissingToken = errors.New("authorization token is missing")

	// ErrInvalidToken is returned when a bearer token fails validation.
	ErrInvalidToken = errors.New("authorization token is invalid or expired")

	// ErrRateLimited is returned when login attempts exceed the allowed rate.
	ErrRateLimited = errors.New("too many attempts, try again later")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUT-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmailAlreadyExists AuthErrorCode = "AUT-010001"
	ErrCodeInvalidCredentials AuthErrorCode = "AUT-010002"
	ErrCodeWeakPassword       AuthErrorCode = "AUT-010003"
	ErrCodeUserNotFound       AuthErrorCode = "AUT-010004"
	ErrCodeInvalidEmail       AuthErrorCode = "AUT-010005"

	// Token errors (02XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUT-020001"
	ErrCodeInvalidToken AuthErrorCode = "AUT-020002"
	ErrCodeRateLimited  AuthErrorCode = "AUT-020003"
)

// AuthError represents an auth error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
