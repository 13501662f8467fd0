// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/persistence/model"
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

// Get retrieves the settings row, falling back to defaults when no row has
// been saved yet.
func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settingsModel model.SettingsModel
	result := r.db.WithContext(ctx).First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return entity.DefaultSettings(), nil
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// Save upserts the single settings row.
func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	settingsModel := model.SettingsFromEntity(settings)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(settingsModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
