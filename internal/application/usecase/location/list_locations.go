// Package location contains location-related use cases.
package location

import (
	"context"
	"fmt"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// ListLocationsInput represents the input for listing locations.
type ListLocationsInput struct{}

// ListLocationsOutput represents the output of listing locations, ordered by
// sort order then name.
type ListLocationsOutput struct {
	Locations []*entity.LocationWithCount
}

// ListLocationsUseCase handles listing locations logic.
type ListLocationsUseCase struct {
	locationRepo adapter.LocationRepository
	itemRepo     adapter.ItemRepository
}

// NewListLocationsUseCase creates a new ListLocationsUseCase instance.
func NewListLocationsUseCase(locationRepo adapter.LocationRepository, itemRepo adapter.ItemRepository) *ListLocationsUseCase {
	return &ListLocationsUseCase{
		locationRepo: locationRepo,
		itemRepo:     itemRepo,
	}
}

// Execute performs the location listing.
func (uc *ListLocationsUseCase) Execute(ctx context.Context, input ListLocationsInput) (*ListLocationsOutput, error) {
	locations, err := uc.locationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	output := &ListLocationsOutput{
		Locations: make([]*entity.LocationWithCount, len(locations)),
	}
	for i, location := range locations {
		count, err := uc.itemRepo.CountByLocation(ctx, location.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count items in location: %w", err)
		}
		output.Locations[i] = &entity.LocationWithCount{
			Location:  location,
			ItemCount: count,
		}
	}

	return output, nil
}
