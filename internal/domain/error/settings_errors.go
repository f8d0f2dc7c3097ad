package error

import "errors"

// Settings domain errors.
var (
	// ErrNegativeBudget is returned when a budget update is below zero.
	ErrNegativeBudget = errors.New("monthly budget must not be negative")

	// ErrSettingsNotFound is returned internally when no settings row exists.
	// Callers never see it: reads resolve it by creating defaults.
	ErrSettingsNotFound = errors.New("settings not found")
)

// SettingsErrorCode defines error codes for settings errors.
type SettingsErrorCode string

const (
	ErrCodeNegativeBudget SettingsErrorCode = "SET-010001"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
