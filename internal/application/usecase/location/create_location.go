// Package location contains location-related use cases.
package location

import (
	"context"
	"fmt"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

// MaxLocationNameLength is the maximum allowed length for location names.
const MaxLocationNameLength = 50

// CreateLocationInput represents the input for location creation.
type CreateLocationInput struct {
	Name         string
	Color        *entity.Color // Optional, defaults to white
	DisplayInRow *bool         // Optional, defaults to true
}

// CreateLocationOutput represents the output of location creation.
type CreateLocationOutput struct {
	Location *entity.Location
}

// CreateLocationUseCase handles location creation logic. Locations are
// identified by UUID, so two locations may share a name; deduplication by
// name only happens in the suggestion layer.
type CreateLocationUseCase struct {
	locationRepo adapter.LocationRepository
}

// NewCreateLocationUseCase creates a new CreateLocationUseCase instance.
func NewCreateLocationUseCase(locationRepo adapter.LocationRepository) *CreateLocationUseCase {
	return &CreateLocationUseCase{
		locationRepo: locationRepo,
	}
}

// Execute performs the location creation.
func (uc *CreateLocationUseCase) Execute(ctx context.Context, input CreateLocationInput) (*CreateLocationOutput, error) {
	// Validate name
	if input.Name == "" {
		return nil, domainerror.NewLocationError(
			domainerror.ErrCodeLocationNameEmpty,
			"location name must not be empty",
			domainerror.ErrLocationNameEmpty,
		)
	}
	if len(input.Name) > MaxLocationNameLength {
		return nil, domainerror.NewLocationError(
			domainerror.ErrCodeLocationNameTooLong,
			fmt.Sprintf("location name must not exceed %d characters", MaxLocationNameLength),
			domainerror.ErrLocationNameTooLong,
		)
	}

	location := entity.NewLocation(input.Name)
	if input.Color != nil {
		location.Color = *input.Color
	}
	if input.DisplayInRow != nil {
		location.DisplayInRow = *input.DisplayInRow
	}

	// New locations are appended at the end of the sort order
	maxOrder, err := uc.locationRepo.MaxSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get max sort order: %w", err)
	}
	location.SortOrder = maxOrder + 1

	// Save location to the local store
	if err := uc.locationRepo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	return &CreateLocationOutput{
		Location: location,
	}, nil
}
