// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/persistence/model"
)

// locationRepository implements the adapter.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository instance.
func NewLocationRepository(db *gorm.DB) adapter.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Create inserts a new location into the database.
func (r *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	locationModel := model.LocationFromEntity(location)
	result := r.db.WithContext(ctx).Create(locationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a location by its ID.
func (r *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationModel model.LocationModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&locationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLocationNotFound
		}
		return nil, result.Error
	}
	return locationModel.ToEntity(), nil
}

// FindByName retrieves the first location with an exact name match, or nil
// when none exists.
func (r *locationRepository) FindByName(ctx context.Context, name string) (*entity.Location, error) {
	var locationModel model.LocationModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&locationModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return locationModel.ToEntity(), nil
}

// FindAll retrieves every location, ordered by sort order then name.
func (r *locationRepository) FindAll(ctx context.Context) ([]*entity.Location, error) {
	var locationModels []model.LocationModel
	result := r.db.WithContext(ctx).
		Order("sort_order ASC, name ASC").
		Find(&locationModels)
	if result.Error != nil {
		return nil, result.Error
	}

	locations := make([]*entity.Location, len(locationModels))
	for i, lm := range locationModels {
		locations[i] = lm.ToEntity()
	}
	return locations, nil
}

// Update persists all mutable fields of an existing location.
func (r *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	locationModel := model.LocationFromEntity(location)
	result := r.db.WithContext(ctx).Save(locationModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateSortOrders applies new sort orders in a single transaction.
func (r *locationRepository) UpdateSortOrders(ctx context.Context, updates []entity.SortOrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			result := tx.Model(&model.LocationModel{}).
				Where("id = ?", update.ID).
				Update("sort_order", update.SortOrder)
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

// MaxSortOrder returns the highest sort order across all locations, or -1
// when the store holds no locations.
func (r *locationRepository) MaxSortOrder(ctx context.Context) (int, error) {
	var max int
	result := r.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Select("COALESCE(MAX(sort_order), -1)").
		Scan(&max)
	if result.Error != nil {
		return 0, result.Error
	}
	return max, nil
}

// Delete removes a location. Referencing items have their location cleared
// in the same transaction.
func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ItemModel{}).
			Where("location_id = ?", id).
			Update("location_id", nil)
		if result.Error != nil {
			return result.Error
		}
		return tx.Delete(&model.LocationModel{}, "id = ?", id).Error
	})
}
