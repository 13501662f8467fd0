// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
	"github.com/Somebud0180/rInventory-sub001/internal/integration/persistence/model"
)

// itemRepository implements the adapter.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository instance.
func NewItemRepository(db *gorm.DB) adapter.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

// Create inserts a new item into the database.
func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemModel := model.ItemFromEntity(item)
	result := r.db.WithContext(ctx).Create(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an item by its ID.
func (r *itemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var itemModel model.ItemModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrItemNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindAll retrieves every item, ordered by sort order then name.
func (r *itemRepository) FindAll(ctx context.Context) ([]*entity.Item, error) {
	var itemModels []model.ItemModel
	result := r.db.WithContext(ctx).
		Order("sort_order ASC, name ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toItemEntities(itemModels), nil
}

// FindByCategory retrieves all items referencing the given category.
func (r *itemRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Item, error) {
	var itemModels []model.ItemModel
	result := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("sort_order ASC, name ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toItemEntities(itemModels), nil
}

// FindByLocation retrieves all items referencing the given location.
func (r *itemRepository) FindByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Item, error) {
	var itemModels []model.ItemModel
	result := r.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Order("sort_order ASC, name ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toItemEntities(itemModels), nil
}

// Update persists all mutable fields of an existing item. Save writes every
// column so cleared optional fields (image, symbol color, references) are
// persisted as NULL rather than skipped.
func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	itemModel := model.ItemFromEntity(item)
	result := r.db.WithContext(ctx).Save(itemModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// UpdateSortOrders applies new sort orders in a single transaction,
// refreshing each item's modification timestamp.
func (r *itemRepository) UpdateSortOrders(ctx context.Context, updates []entity.SortOrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	now := time.Now().UTC()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, update := range updates {
			result := tx.Model(&model.ItemModel{}).
				Where("id = ?", update.ID).
				Updates(map[string]interface{}{
					"sort_order":  update.SortOrder,
					"modified_at": now,
				})
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

// MaxSortOrder returns the highest sort order across all items, or -1 when
// the store holds no items.
func (r *itemRepository) MaxSortOrder(ctx context.Context) (int, error) {
	var max int
	result := r.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Select("COALESCE(MAX(sort_order), -1)").
		Scan(&max)
	if result.Error != nil {
		return 0, result.Error
	}
	return max, nil
}

// Delete removes an item from the database.
func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ItemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// CountByCategory counts items referencing the given category.
func (r *itemRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// CountByLocation counts items referencing the given location.
func (r *itemRepository) CountByLocation(ctx context.Context, locationID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("location_id = ?", locationID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// toItemEntities maps a batch of item models to entities.
func toItemEntities(itemModels []model.ItemModel) []*entity.Item {
	items := make([]*entity.Item, len(itemModels))
	for i, im := range itemModels {
		items[i] = im.ToEntity()
	}
	return items
}
