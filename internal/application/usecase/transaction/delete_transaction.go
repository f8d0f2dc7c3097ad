package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hamsacorp/expense-backend/internal/application/adapter"
	domainerror "github.com/hamsacorp/expense-backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID    uuid.UUID
	Owner string
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	existing, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	if existing.Owner != input.Owner {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotOwned,
			"transaction does not belong to user",
			domainerror.ErrTransactionNotOwned,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}
