package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidDateRange is returned when the range end precedes its start.
	ErrInvalidDateRange = errors.New("end date must not be before start date")

	// ErrInvalidDate is returned when a date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidMonth is returned when the month is outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned when the year is not a plausible calendar year.
	ErrInvalidYear = errors.New("year is out of range")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateRange ReportErrorCode = "RPT-010001"
	ErrCodeInvalidDate      ReportErrorCode = "RPT-010002"
	ErrCodeInvalidMonth     ReportErrorCode = "RPT-010003"
	ErrCodeInvalidYear      ReportErrorCode = "RPT-010004"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
