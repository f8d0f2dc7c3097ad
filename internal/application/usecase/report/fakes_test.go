package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hamsacorp/expense-backend/internal/application/adapter"
	"github.com/hamsacorp/expense-backend/internal/domain/entity"
)

// fakeTransactionRepository serves the read side of the repository from an
// in-memory slice. Write operations are not used by report use cases.
type fakeTransactionRepository struct {
	transactions []*entity.Transaction
	err          error
}

func (r *fakeTransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *fakeTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (r *fakeTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}

func (r *fakeTransactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, pagination adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	return &entity.TransactionListResult{Transactions: r.transactions}, nil
}

func (r *fakeTransactionRepository) FindByOwnerAndDateRange(ctx context.Context, owner string, start, end time.Time) ([]*entity.Transaction, error) {
	if r.err != nil {
		return nil, r.err
	}
	var result []*entity.Transaction
	for _, t := range r.transactions {
		if t.Owner != owner {
			continue
		}
		if t.OccurredOn.Before(start) || t.OccurredOn.After(end) {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

func (r *fakeTransactionRepository) FindByOwnerAndDate(ctx context.Context, owner string, date time.Time) ([]*entity.Transaction, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return r.FindByOwnerAndDateRange(ctx, owner, day, day)
}

// fakeSettingsRepository returns a fixed settings row, or the caller's
// defaults when none is configured.
type fakeSettingsRepository struct {
	settings *entity.UserSettings
	err      error
}

func (r *fakeSettingsRepository) GetOrCreate(ctx context.Context, defaults *entity.UserSettings) (*entity.UserSettings, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.settings != nil {
		return r.settings, nil
	}
	return defaults, nil
}

func (r *fakeSettingsRepository) Update(ctx context.Context, settings *entity.UserSettings) error {
	return nil
}

func (r *fakeSettingsRepository) DeleteByOwner(ctx context.Context, owner string) error {
	return nil
}

const testOwner = "dana@example.com"

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newTxn(kind entity.TransactionKind, description, amount, category string, occurredOn time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:          uuid.New(),
		Owner:       testOwner,
		Kind:        kind,
		Description: description,
		Amount:      decimal.RequireFromString(amount),
		OccurredOn:  occurredOn,
		Category:    category,
	}
}

func expense(description, amount, category string, occurredOn time.Time) *entity.Transaction {
	return newTxn(entity.TransactionKindExpense, description, amount, category, occurredOn)
}

func testDefaults() Defaults {
	return Defaults{
		Currency:      "INR",
		DateFormat:    "DD/MM/YYYY",
		MonthlyBudget: decimal.NewFromInt(12000),
	}
}
