// Package adapter defines the interfaces the application layer depends on.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hamsacorp/expense-backend/internal/domain/entity"
)

// TransactionFilter holds the optional criteria for listing transactions.
type TransactionFilter struct {
	Owner     string
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionPagination holds pagination parameters for listing transactions.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionRepository defines persistence operations for transactions.
// The aggregation engine only uses the read side; the write side serves the
// CRUD boundary.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *entity.Transaction) error
	Update(ctx context.Context, transaction *entity.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)
	FindByFilter(ctx context.Context, filter TransactionFilter, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// FindByOwnerAndDateRange returns every transaction for the owner whose
	// OccurredOn falls inside [start, end], both inclusive. Order is stable
	// but otherwise unspecified; aggregation re-sorts as needed.
	FindByOwnerAndDateRange(ctx context.Context, owner string, start, end time.Time) ([]*entity.Transaction, error)

	// FindByOwnerAndDate returns every transaction for the owner on the given
	// calendar date.
	FindByOwnerAndDate(ctx context.Context, owner string, date time.Time) ([]*entity.Transaction, error)
}
