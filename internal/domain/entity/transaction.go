// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind classifies a transaction. The classification affects every
// aggregation: expenses drive budgets and breakdowns, income and savings only
// contribute to period totals.
type TransactionKind string

const (
	TransactionKindExpense TransactionKind = "EXPENSE"
	TransactionKindIncome  TransactionKind = "INCOME"
	TransactionKindSavings TransactionKind = "SAVINGS"
)

// IsValid reports whether the kind is one of the three known variants.
func (k TransactionKind) IsValid() bool {
	return k == TransactionKindExpense || k == TransactionKindIncome || k == TransactionKindSavings
}

// Transaction represents a single dated money movement in the ledger.
type Transaction struct {
	ID            uuid.UUID
	Owner         string // user email; every query is scoped to one owner
	Kind          TransactionKind
	Description   string
	Amount        decimal.Decimal // always non-negative, the kind carries the sign semantics
	OccurredOn    time.Time       // calendar date, no time component
	RecordedAt    *time.Time      // creation timestamp; nil for legacy rows
	Category      string
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTransaction creates a new Transaction entity with a fresh ID and
// RecordedAt set to the current time.
func NewTransaction(
	owner string,
	kind TransactionKind,
	description string,
	amount decimal.Decimal,
	occurredOn time.Time,
	category string,
	paymentMethod string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:            uuid.New(),
		Owner:         owner,
		Kind:          kind,
		Description:   description,
		Amount:        amount,
		OccurredOn:    occurredOn,
		RecordedAt:    &now,
		Category:      category,
		PaymentMethod: paymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// TransactionListResult represents one page of a transaction listing.
type TransactionListResult struct {
	Transactions []*Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}
