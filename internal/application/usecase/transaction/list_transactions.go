// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hamsacorp/expense-backend/internal/application/adapter"
	"github.com/hamsacorp/expense-backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Owner     string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID            uuid.UUID
	Owner         string
	Kind          entity.TransactionKind
	Description   string
	Amount        decimal.Decimal
	OccurredOn    time.Time
	RecordedAt    *time.Time
	Category      string
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PaginationOutput represents pagination information in the output.
type PaginationOutput struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Pagination   PaginationOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	// Set default pagination values
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	filter := adapter.TransactionFilter{
		Owner:     input.Owner,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}

	pagination := adapter.TransactionPagination{
		Page:  page,
		Limit: limit,
	}

	result, err := uc.transactionRepo.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := make([]*TransactionOutput, 0, len(result.Transactions))
	for _, t := range result.Transactions {
		transactions = append(transactions, toTransactionOutput(t))
	}

	return &ListTransactionsOutput{
		Transactions: transactions,
		Pagination: PaginationOutput{
			Page:       result.Page,
			Limit:      result.Limit,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}, nil
}

// toTransactionOutput maps a transaction entity to its use case output.
func toTransactionOutput(t *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:            t.ID,
		Owner:         t.Owner,
		Kind:          t.Kind,
		Description:   t.Description,
		Amount:        t.Amount,
		OccurredOn:    t.OccurredOn,
		RecordedAt:    t.RecordedAt,
		Category:      t.Category,
		PaymentMethod: t.PaymentMethod,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
