// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// ItemRepository defines the interface for item persistence operations.
type ItemRepository interface {
	// Create inserts a new item into the local store.
	Create(ctx context.Context, item *entity.Item) error

	// FindByID retrieves an item by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)

	// FindAll retrieves every item, ordered by sort order then name.
	FindAll(ctx context.Context) ([]*entity.Item, error)

	// FindByCategory retrieves all items referencing the given category.
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Item, error)

	// FindByLocation retrieves all items referencing the given location.
	FindByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Item, error)

	// Update persists all mutable fields of an existing item.
	Update(ctx context.Context, item *entity.Item) error

	// UpdateSortOrders applies new sort orders in a single batch, refreshing
	// each item's modification timestamp.
	UpdateSortOrders(ctx context.Context, updates []entity.SortOrderUpdate) error

	// MaxSortOrder returns the highest sort order across all items, or -1
	// when the store holds no items.
	MaxSortOrder(ctx context.Context) (int, error)

	// Delete removes an item from the local store.
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByCategory counts items referencing the given category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// CountByLocation counts items referencing the given location.
	CountByLocation(ctx context.Context, locationID uuid.UUID) (int64, error)
}
