package adapter

import (
	"context"

	"github.com/hamsacorp/expense-backend/internal/domain/entity"
)

// SettingsRepository defines persistence operations for per-owner settings.
type SettingsRepository interface {
	// GetOrCreate returns the owner's settings, creating the given defaults
	// when no row exists yet. The operation must be idempotent under
	// concurrent first access: two racing callers observe the same single
	// row, never two.
	GetOrCreate(ctx context.Context, defaults *entity.UserSettings) (*entity.UserSettings, error)

	Update(ctx context.Context, settings *entity.UserSettings) error
	DeleteByOwner(ctx context.Context, owner string) error
}
