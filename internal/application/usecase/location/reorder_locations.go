// Package location contains location-related use cases.
package location

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

// ReorderLocationsInput represents the input for location reordering.
// Locations receive sort orders matching their position in OrderedIDs.
type ReorderLocationsInput struct {
	OrderedIDs []uuid.UUID
}

// ReorderLocationsOutput represents the output of location reordering.
type ReorderLocationsOutput struct {
	Locations []*entity.Location
}

// ReorderLocationsUseCase handles location reordering logic.
type ReorderLocationsUseCase struct {
	locationRepo adapter.LocationRepository
}

// NewReorderLocationsUseCase creates a new ReorderLocationsUseCase instance.
func NewReorderLocationsUseCase(locationRepo adapter.LocationRepository) *ReorderLocationsUseCase {
	return &ReorderLocationsUseCase{
		locationRepo: locationRepo,
	}
}

// Execute performs the location reordering.
func (uc *ReorderLocationsUseCase) Execute(ctx context.Context, input ReorderLocationsInput) (*ReorderLocationsOutput, error) {
	// Validate that at least one location is provided
	if len(input.OrderedIDs) == 0 {
		return nil, domainerror.NewLocationError(
			domainerror.ErrCodeLocationOrderEmpty,
			"at least one location must be provided",
			domainerror.ErrLocationOrderEmpty,
		)
	}

	// Verify all locations exist before touching any of them
	for _, id := range input.OrderedIDs {
		if _, err := uc.locationRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, domainerror.ErrLocationNotFound) {
				return nil, domainerror.NewLocationError(
					domainerror.ErrCodeLocationNotFound,
					fmt.Sprintf("location not found: %s", id),
					domainerror.ErrLocationNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find location: %w", err)
		}
	}

	// Assign contiguous sort orders by position
	updates := make([]entity.SortOrderUpdate, len(input.OrderedIDs))
	for i, id := range input.OrderedIDs {
		updates[i] = entity.SortOrderUpdate{
			ID:        id,
			SortOrder: i,
		}
	}

	// Update sort orders in batch
	if err := uc.locationRepo.UpdateSortOrders(ctx, updates); err != nil {
		return nil, fmt.Errorf("failed to update location sort orders: %w", err)
	}

	// Fetch the reordered list
	locations, err := uc.locationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reordered locations: %w", err)
	}

	return &ReorderLocationsOutput{
		Locations: locations,
	}, nil
}
