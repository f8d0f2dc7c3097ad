package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hamsacorp/expense-backend/internal/domain/entity"
)

// UserSettingsModel represents the user_settings table in the database.
// The unique index on Owner is what makes lazy creation race-safe.
type UserSettingsModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Owner         string          `gorm:"type:varchar(255);not null;uniqueIndex"`
	Currency      string          `gorm:"type:varchar(10);not null"`
	DateFormat    string          `gorm:"type:varchar(20);not null"`
	MonthlyBudget decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the UserSettingsModel.
func (UserSettingsModel) TableName() string {
	return "user_settings"
}

// ToEntity converts a UserSettingsModel to a domain UserSettings entity.
func (m *UserSettingsModel) ToEntity() *entity.UserSettings {
	return &entity.UserSettings{
		ID:            m.ID,
		Owner:         m.Owner,
		Currency:      m.Currency,
		DateFormat:    m.DateFormat,
		MonthlyBudget: m.MonthlyBudget,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// UserSettingsFromEntity creates a UserSettingsModel from a domain UserSettings entity.
func UserSettingsFromEntity(settings *entity.UserSettings) *UserSettingsModel {
	return &UserSettingsModel{
		ID:            settings.ID,
		Owner:         settings.Owner,
		Currency:      settings.Currency,
		DateFormat:    settings.DateFormat,
		MonthlyBudget: settings.MonthlyBudget,
		CreatedAt:     settings.CreatedAt,
		UpdatedAt:     settings.UpdatedAt,
	}
}
