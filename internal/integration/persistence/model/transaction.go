// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hamsacorp/expense-backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Owner         string          `gorm:"type:varchar(255);not null;index:idx_transactions_owner_date"`
	Kind          string          `gorm:"type:varchar(10);not null;index"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	OccurredOn    time.Time       `gorm:"type:date;not null;index:idx_transactions_owner_date"`
	RecordedAt    *time.Time      `gorm:"type:timestamp"`
	Category      string          `gorm:"type:varchar(100);not null;index"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:            m.ID,
		Owner:         m.Owner,
		Kind:          entity.TransactionKind(m.Kind),
		Description:   m.Description,
		Amount:        m.Amount,
		OccurredOn:    m.OccurredOn,
		RecordedAt:    m.RecordedAt,
		Category:      m.Category,
		PaymentMethod: m.PaymentMethod,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:            transaction.ID,
		Owner:         transaction.Owner,
		Kind:          string(transaction.Kind),
		Description:   transaction.Description,
		Amount:        transaction.Amount,
		OccurredOn:    transaction.OccurredOn,
		RecordedAt:    transaction.RecordedAt,
		Category:      transaction.Category,
		PaymentMethod: transaction.PaymentMethod,
		CreatedAt:     transaction.CreatedAt,
		UpdatedAt:     transaction.UpdatedAt,
	}
}
