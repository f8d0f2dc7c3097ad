package settings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hamsacorp/expense-backend/internal/application/adapter"
	"github.com/hamsacorp/expense-backend/internal/domain/entity"
	domainerror "github.com/hamsacorp/expense-backend/internal/domain/error"
)

// UpdateSettingsInput represents the input for a settings update. Nil fields
// keep their stored value.
type UpdateSettingsInput struct {
	Owner         string
	Currency      *string
	DateFormat    *string
	MonthlyBudget *decimal.Decimal
}

// UpdateSettingsUseCase handles partial settings updates.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	defaults     Defaults
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository, defaults Defaults) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
		defaults:     defaults,
	}
}

// Execute applies the provided fields on top of the stored settings. The row
// is created with defaults first when the owner has none yet, so an update is
// never a miss.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*SettingsOutput, error) {
	if input.MonthlyBudget != nil && input.MonthlyBudget.Sign() < 0 {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeNegativeBudget,
			"monthly budget must not be negative",
			domainerror.ErrNegativeBudget,
		)
	}

	settings, err := uc.settingsRepo.GetOrCreate(ctx, entity.NewUserSettings(
		input.Owner,
		uc.defaults.Currency,
		uc.defaults.DateFormat,
		uc.defaults.MonthlyBudget,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if input.Currency != nil && strings.TrimSpace(*input.Currency) != "" {
		settings.Currency = strings.TrimSpace(*input.Currency)
	}
	if input.DateFormat != nil && strings.TrimSpace(*input.DateFormat) != "" {
		settings.DateFormat = strings.TrimSpace(*input.DateFormat)
	}
	if input.MonthlyBudget != nil {
		settings.MonthlyBudget = *input.MonthlyBudget
	}
	settings.UpdatedAt = time.Now().UTC()

	if err := uc.settingsRepo.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return toSettingsOutput(settings), nil
}
