package dto

import (
	"time"

	"github.com/shopspring/decimal"

	usecase "github.com/hamsacorp/expense-backend/internal/application/usecase/transaction"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Kind          string          `json:"kind" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          string          `json:"date" binding:"required"` // YYYY-MM-DD
	Category      string          `json:"category" binding:"required"`
	PaymentMethod string          `json:"payment_method"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Kind          string          `json:"kind" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Date          string          `json:"date" binding:"required"` // YYYY-MM-DD
	Category      string          `json:"category" binding:"required"`
	PaymentMethod string          `json:"payment_method"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Kind          string          `json:"kind"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          string          `json:"date"`
	RecordedAt    *time.Time      `json:"recorded_at,omitempty"`
	Category      string          `json:"category"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PaginationResponse represents pagination metadata in list responses.
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionListResponse represents the response for transaction listing.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationResponse    `json:"pagination"`
}

// ToTransactionResponse converts a use case transaction output to a response DTO.
func ToTransactionResponse(t *usecase.TransactionOutput) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID.String(),
		Kind:          string(t.Kind),
		Description:   t.Description,
		Amount:        t.Amount,
		Date:          t.OccurredOn.Format("2006-01-02"),
		RecordedAt:    t.RecordedAt,
		Category:      t.Category,
		PaymentMethod: t.PaymentMethod,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
