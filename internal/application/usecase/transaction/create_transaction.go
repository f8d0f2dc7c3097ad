package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hamsacorp/expense-backend/internal/application/adapter"
	"github.com/hamsacorp/expense-backend/internal/domain/entity"
	domainerror "github.com/hamsacorp/expense-backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Owner         string
	Kind          entity.TransactionKind
	Description   string
	Amount        decimal.Decimal
	OccurredOn    time.Time
	Category      string
	PaymentMethod string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Kind, input.Description, input.Amount, input.Category); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.Owner,
		input.Kind,
		strings.TrimSpace(input.Description),
		input.Amount,
		input.OccurredOn,
		strings.TrimSpace(input.Category),
		input.PaymentMethod,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(transaction),
	}, nil
}

// validateTransactionFields applies the shared field validation for creates and updates.
func validateTransactionFields(kind entity.TransactionKind, description string, amount decimal.Decimal, category string) error {
	if !kind.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"kind must be EXPENSE, INCOME or SAVINGS",
			domainerror.ErrInvalidTransactionKind,
		)
	}

	if amount.Sign() < 0 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	if strings.TrimSpace(description) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingDescription,
			"description is required",
			domainerror.ErrMissingDescription,
		)
	}

	if len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if strings.TrimSpace(category) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingCategory,
			"category is required",
			domainerror.ErrMissingCategory,
		)
	}

	return nil
}
