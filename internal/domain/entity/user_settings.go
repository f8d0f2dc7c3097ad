package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserSettings holds per-owner preferences. Exactly one row exists per owner;
// it is created lazily with defaults on first read.
type UserSettings struct {
	ID            uuid.UUID
	Owner         string
	Currency      string
	DateFormat    string
	MonthlyBudget decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUserSettings creates settings for an owner with the given defaults.
func NewUserSettings(owner, currency, dateFormat string, monthlyBudget decimal.Decimal) *UserSettings {
	now := time.Now().UTC()

	return &UserSettings{
		ID:            uuid.New(),
		Owner:         owner,
		Currency:      currency,
		DateFormat:    dateFormat,
		MonthlyBudget: monthlyBudget,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
