// Package settings contains user settings use cases.
package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hamsacorp/expense-backend/internal/application/adapter"
	"github.com/hamsacorp/expense-backend/internal/domain/entity"
)

// Defaults holds the values a fresh settings row starts with.
type Defaults struct {
	Currency      string
	DateFormat    string
	MonthlyBudget decimal.Decimal
}

// GetSettingsInput represents the input for reading settings.
type GetSettingsInput struct {
	Owner string
}

// SettingsOutput represents the owner's settings in the output.
type SettingsOutput struct {
	Currency      string
	DateFormat    string
	MonthlyBudget decimal.Decimal
	UpdatedAt     time.Time
}

// GetSettingsUseCase reads the owner's settings, creating defaults on first access.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	defaults     Defaults
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository, defaults Defaults) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
		defaults:     defaults,
	}
}

// Execute returns the owner's settings. When the owner has none yet, a row
// with the configured defaults is created and returned.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*SettingsOutput, error) {
	settings, err := uc.settingsRepo.GetOrCreate(ctx, entity.NewUserSettings(
		input.Owner,
		uc.defaults.Currency,
		uc.defaults.DateFormat,
		uc.defaults.MonthlyBudget,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return toSettingsOutput(settings), nil
}

func toSettingsOutput(s *entity.UserSettings) *SettingsOutput {
	return &SettingsOutput{
		Currency:      s.Currency,
		DateFormat:    s.DateFormat,
		MonthlyBudget: s.MonthlyBudget,
		UpdatedAt:     s.UpdatedAt,
	}
}
