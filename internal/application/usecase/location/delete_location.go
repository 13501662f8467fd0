// Package location contains location-related use cases.
package location

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

// DeleteLocationInput represents the input for location deletion.
type DeleteLocationInput struct {
	ID uuid.UUID
}

// DeleteLocationOutput represents the output of location deletion.
type DeleteLocationOutput struct {
	Success bool
}

// DeleteLocationUseCase handles location deletion logic. Items referencing
// the location keep existing; the repository clears their reference.
type DeleteLocationUseCase struct {
	locationRepo adapter.LocationRepository
}

// NewDeleteLocationUseCase creates a new DeleteLocationUseCase instance.
func NewDeleteLocationUseCase(locationRepo adapter.LocationRepository) *DeleteLocationUseCase {
	return &DeleteLocationUseCase{
		locationRepo: locationRepo,
	}
}

// Execute performs the location deletion.
func (uc *DeleteLocationUseCase) Execute(ctx context.Context, input DeleteLocationInput) (*DeleteLocationOutput, error) {
	// Find the existing location
	if _, err := uc.locationRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrLocationNotFound) {
			return nil, domainerror.NewLocationError(
				domainerror.ErrCodeLocationNotFound,
				"location not found",
				domainerror.ErrLocationNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find location: %w", err)
	}

	// Delete the location
	if err := uc.locationRepo.Delete(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("failed to delete location: %w", err)
	}

	return &DeleteLocationOutput{
		Success: true,
	}, nil
}
