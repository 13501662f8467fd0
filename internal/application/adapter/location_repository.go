// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// LocationRepository defines the interface for location persistence operations.
type LocationRepository interface {
	// Create inserts a new location into the local store.
	Create(ctx context.Context, location *entity.Location) error

	// FindByID retrieves a location by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindByName retrieves the first location with an exact name match, or
	// nil when none exists (used by find-or-create and suggestions).
	FindByName(ctx context.Context, name string) (*entity.Location, error)

	// FindAll retrieves every location, ordered by sort order then name.
	FindAll(ctx context.Context) ([]*entity.Location, error)

	// Update persists all mutable fields of an existing location.
	Update(ctx context.Context, location *entity.Location) error

	// UpdateSortOrders applies new sort orders in a single batch.
	UpdateSortOrders(ctx context.Context, updates []entity.SortOrderUpdate) error

	// MaxSortOrder returns the highest sort order across all locations, or
	// -1 when the store holds no locations.
	MaxSortOrder(ctx context.Context) (int, error)

	// Delete removes a location; referencing items are nullified first.
	Delete(ctx context.Context, id uuid.UUID) error
}
