package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionNotOwned is returned when a transaction belongs to another owner.
	ErrTransactionNotOwned = errors.New("transaction does not belong to user")

	// ErrInvalidTransactionKind is returned when the kind is not a known variant.
	ErrInvalidTransactionKind = errors.New("kind must be EXPENSE, INCOME or SAVINGS")

	// ErrNegativeAmount is returned when the amount is below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrMissingDescription is returned when the description is empty.
	ErrMissingDescription = errors.New("description is required")

	// ErrMissingCategory is returned when the category is empty.
	ErrMissingCategory = errors.New("category is required")

	// ErrDescriptionTooLong is returned when the description exceeds the limit.
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionKind TransactionErrorCode = "TXN-010001"
	ErrCodeNegativeAmount         TransactionErrorCode = "TXN-010002"
	ErrCodeMissingDescription     TransactionErrorCode = "TXN-010003"
	ErrCodeMissingCategory        TransactionErrorCode = "TXN-010004"
	ErrCodeDescriptionTooLong     TransactionErrorCode = "TXN-010005"

	// Access errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
	ErrCodeTransactionNotOwned TransactionErrorCode = "TXN-020002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
