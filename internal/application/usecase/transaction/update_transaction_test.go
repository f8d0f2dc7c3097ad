package transaction

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hamsacorp/expense-backend/internal/domain/entity"
	domainerror "github.com/hamsacorp/expense-backend/internal/domain/error"
)

func TestUpdateTransactionUseCase_Execute(t *testing.T) {
	seed := func(repo *fakeTransactionRepository) *entity.Transaction {
		existing := entity.NewTransaction(
			"dana@example.com",
			entity.TransactionKindExpense,
			"groceries",
			decimal.NewFromInt(120),
			validCreateInput().OccurredOn,
			"Food",
			"card",
		)
		repo.byID[existing.ID] = existing
		return existing
	}

	// Test fields are replaced and the update persisted.
	t.Run("updates an owned transaction", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		existing := seed(repo)
		uc := NewUpdateTransactionUseCase(repo)

		out, err := uc.Execute(context.Background(), UpdateTransactionInput{
			ID:            existing.ID,
			Owner:         existing.Owner,
			Kind:          entity.TransactionKindExpense,
			Description:   "weekly groceries",
			Amount:        decimal.NewFromInt(150),
			OccurredOn:    existing.OccurredOn,
			Category:      "Food",
			PaymentMethod: "cash",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(repo.updated) != 1 {
			t.Fatalf("expected 1 updated transaction, got %d", len(repo.updated))
		}
		if out.Transaction.Description != "weekly groceries" {
			t.Errorf("expected updated description, got %s", out.Transaction.Description)
		}
		if !out.Transaction.Amount.Equal(decimal.NewFromInt(150)) {
			t.Errorf("expected amount 150, got %s", out.Transaction.Amount)
		}
		if out.Transaction.UpdatedAt.Before(out.Transaction.CreatedAt) {
			t.Error("expected UpdatedAt to move forward")
		}
	})

	// Test an unknown id maps to not-found.
	t.Run("unknown transaction maps to not found", func(t *testing.T) {
		uc := NewUpdateTransactionUseCase(newFakeTransactionRepository())

		input := UpdateTransactionInput{
			ID:          uuid.New(),
			Owner:       "dana@example.com",
			Kind:        entity.TransactionKindExpense,
			Description: "groceries",
			Amount:      decimal.NewFromInt(10),
			Category:    "Food",
		}

		_, err := uc.Execute(context.Background(), input)
		assertTransactionErrorCode(t, err, domainerror.ErrCodeTransactionNotFound)
	})

	// Test another owner's transaction cannot be updated.
	t.Run("rejects another owner's transaction", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		existing := seed(repo)
		uc := NewUpdateTransactionUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateTransactionInput{
			ID:          existing.ID,
			Owner:       "mallory@example.com",
			Kind:        entity.TransactionKindExpense,
			Description: "groceries",
			Amount:      decimal.NewFromInt(10),
			Category:    "Food",
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeTransactionNotOwned)
	})

	// Test validation runs before the lookup.
	t.Run("validates fields before the lookup", func(t *testing.T) {
		uc := NewUpdateTransactionUseCase(newFakeTransactionRepository())

		_, err := uc.Execute(context.Background(), UpdateTransactionInput{
			ID:          uuid.New(),
			Owner:       "dana@example.com",
			Kind:        "TRANSFER",
			Description: "groceries",
			Amount:      decimal.NewFromInt(10),
			Category:    "Food",
		})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeInvalidTransactionKind)
	})
}

func TestDeleteTransactionUseCase_Execute(t *testing.T) {
	// Test an owned transaction is deleted.
	t.Run("deletes an owned transaction", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		existing := entity.NewTransaction(
			"dana@example.com", entity.TransactionKindExpense, "groceries",
			decimal.NewFromInt(120), validCreateInput().OccurredOn, "Food", "card",
		)
		repo.byID[existing.ID] = existing
		uc := NewDeleteTransactionUseCase(repo)

		if err := uc.Execute(context.Background(), DeleteTransactionInput{ID: existing.ID, Owner: existing.Owner}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if len(repo.deleted) != 1 {
			t.Fatalf("expected 1 deleted transaction, got %d", len(repo.deleted))
		}
	})

	// Test an unknown id maps to not-found.
	t.Run("unknown transaction maps to not found", func(t *testing.T) {
		uc := NewDeleteTransactionUseCase(newFakeTransactionRepository())

		err := uc.Execute(context.Background(), DeleteTransactionInput{ID: uuid.New(), Owner: "dana@example.com"})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeTransactionNotFound)
	})

	// Test another owner's transaction cannot be deleted.
	t.Run("rejects another owner's transaction", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		existing := entity.NewTransaction(
			"dana@example.com", entity.TransactionKindExpense, "groceries",
			decimal.NewFromInt(120), validCreateInput().OccurredOn, "Food", "card",
		)
		repo.byID[existing.ID] = existing
		uc := NewDeleteTransactionUseCase(repo)

		err := uc.Execute(context.Background(), DeleteTransactionInput{ID: existing.ID, Owner: "mallory@example.com"})
		assertTransactionErrorCode(t, err, domainerror.ErrCodeTransactionNotOwned)

		if len(repo.deleted) != 0 {
			t.Error("expected no deletion to happen")
		}
	})
}
