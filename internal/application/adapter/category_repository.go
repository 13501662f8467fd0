// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create inserts a new category into the local store.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByName retrieves the first category with an exact name match, or
	// nil when none exists (used by find-or-create and suggestions).
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// FindAll retrieves every category, ordered by sort order then name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Update persists all mutable fields of an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// UpdateSortOrders applies new sort orders in a single batch.
	UpdateSortOrders(ctx context.Context, updates []entity.SortOrderUpdate) error

	// MaxSortOrder returns the highest sort order across all categories, or
	// -1 when the store holds no categories.
	MaxSortOrder(ctx context.Context) (int, error)

	// Delete removes a category; referencing items are nullified first.
	Delete(ctx context.Context, id uuid.UUID) error
}
