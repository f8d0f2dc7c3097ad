package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hamsacorp/expense-backend/internal/application/adapter"
	"github.com/hamsacorp/expense-backend/internal/domain/entity"
	domainerror "github.com/hamsacorp/expense-backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	ID            uuid.UUID
	Owner         string
	Kind          entity.TransactionKind
	Description   string
	Amount        decimal.Decimal
	OccurredOn    time.Time
	Category      string
	PaymentMethod string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateTransactionFields(input.Kind, input.Description, input.Amount, input.Category); err != nil {
		return nil, err
	}

	existing, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	// Ownership check: a transaction is only visible to the user that created it.
	if existing.Owner != input.Owner {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotOwned,
			"transaction does not belong to user",
			domainerror.ErrTransactionNotOwned,
		)
	}

	existing.Kind = input.Kind
	existing.Description = strings.TrimSpace(input.Description)
	existing.Amount = input.Amount
	existing.OccurredOn = input.OccurredOn
	existing.Category = strings.TrimSpace(input.Category)
	existing.PaymentMethod = input.PaymentMethod
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: toTransactionOutput(existing),
	}, nil
}
