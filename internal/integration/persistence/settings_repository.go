package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hamsacorp/expense-backend/internal/application/adapter"
	"github.com/hamsacorp/expense-backend/internal/domain/entity"
	domainerror "github.com/hamsacorp/expense-backend/internal/domain/error"
	"github.com/hamsacorp/expense-backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// GetOrCreate returns the owner's settings row, inserting the defaults when
// none exists. The insert ignores the unique-owner conflict and re-reads, so
// two concurrent first reads both observe the same single row.
func (r *settingsRepository) GetOrCreate(ctx context.Context, defaults *entity.UserSettings) (*entity.UserSettings, error) {
	var settingsModel model.UserSettingsModel
	result := r.db.WithContext(ctx).Where("owner = ?", defaults.Owner).First(&settingsModel)
	if result.Error == nil {
		return settingsModel.ToEntity(), nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	insert := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner"}},
			DoNothing: true,
		}).
		Create(model.UserSettingsFromEntity(defaults))
	if insert.Error != nil {
		return nil, insert.Error
	}

	// Re-read: on conflict the insert was a no-op and another caller's row wins.
	result = r.db.WithContext(ctx).Where("owner = ?", defaults.Owner).First(&settingsModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// Update persists changes to an existing settings row.
func (r *settingsRepository) Update(ctx context.Context, settings *entity.UserSettings) error {
	result := r.db.WithContext(ctx).Save(model.UserSettingsFromEntity(settings))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSettingsNotFound
	}
	return nil
}

// DeleteByOwner removes the owner's settings row. Missing rows are ignored.
func (r *settingsRepository) DeleteByOwner(ctx context.Context, owner string) error {
	result := r.db.WithContext(ctx).Delete(&model.UserSettingsModel{}, "owner = ?", owner)
	return result.Error
}
