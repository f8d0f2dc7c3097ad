package settings

import (
	"context"
	"fmt"

	"github.com/hamsacorp/expense-backend/internal/application/adapter"
)

// DeleteSettingsInput represents the input for a settings reset.
type DeleteSettingsInput struct {
	Owner string
}

// DeleteSettingsUseCase removes the owner's settings row. The next read
// recreates it with defaults, so deletion acts as a reset.
type DeleteSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewDeleteSettingsUseCase creates a new DeleteSettingsUseCase instance.
func NewDeleteSettingsUseCase(settingsRepo adapter.SettingsRepository) *DeleteSettingsUseCase {
	return &DeleteSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute deletes the owner's settings. Deleting settings that do not exist
// is not an error.
func (uc *DeleteSettingsUseCase) Execute(ctx context.Context, input DeleteSettingsInput) error {
	if err := uc.settingsRepo.DeleteByOwner(ctx, input.Owner); err != nil {
		return fmt.Errorf("failed to delete settings: %w", err)
	}

	return nil
}
