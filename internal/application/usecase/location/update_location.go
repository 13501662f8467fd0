// Package location contains location-related use cases.
package location

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

// UpdateLocationInput represents the input for location update. Nil fields
// are left unchanged.
type UpdateLocationInput struct {
	ID           uuid.UUID
	Name         *string
	Color        *entity.Color
	DisplayInRow *bool
}

// UpdateLocationOutput represents the output of location update.
type UpdateLocationOutput struct {
	Location *entity.Location
}

// UpdateLocationUseCase handles location update logic.
type UpdateLocationUseCase struct {
	locationRepo adapter.LocationRepository
}

// NewUpdateLocationUseCase creates a new UpdateLocationUseCase instance.
func NewUpdateLocationUseCase(locationRepo adapter.LocationRepository) *UpdateLocationUseCase {
	return &UpdateLocationUseCase{
		locationRepo: locationRepo,
	}
}

// Execute performs the location update.
func (uc *UpdateLocationUseCase) Execute(ctx context.Context, input UpdateLocationInput) (*UpdateLocationOutput, error) {
	// Find the existing location
	location, err := uc.locationRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrLocationNotFound) {
			return nil, domainerror.NewLocationError(
				domainerror.ErrCodeLocationNotFound,
				"location not found",
				domainerror.ErrLocationNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find location: %w", err)
	}

	// Update name if provided
	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewLocationError(
				domainerror.ErrCodeLocationNameEmpty,
				"location name must not be empty",
				domainerror.ErrLocationNameEmpty,
			)
		}
		if len(*input.Name) > MaxLocationNameLength {
			return nil, domainerror.NewLocationError(
				domainerror.ErrCodeLocationNameTooLong,
				fmt.Sprintf("location name must not exceed %d characters", MaxLocationNameLength),
				domainerror.ErrLocationNameTooLong,
			)
		}
		location.Name = *input.Name
	}

	// Update color if provided
	if input.Color != nil {
		location.Color = *input.Color
	}

	// Update row visibility if provided
	if input.DisplayInRow != nil {
		location.DisplayInRow = *input.DisplayInRow
	}

	// Update timestamp
	location.UpdatedAt = time.Now().UTC()

	// Save updated location
	if err := uc.locationRepo.Update(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}

	return &UpdateLocationOutput{
		Location: location,
	}, nil
}
