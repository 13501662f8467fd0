// Package item contains item-related use cases.
package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

// DeleteItemInput represents the input for item deletion.
type DeleteItemInput struct {
	ID uuid.UUID
}

// DeleteItemOutput represents the output of item deletion. RemovedCategory
// and RemovedLocation report whether the deletion also removed a
// now-unreferenced category or location.
type DeleteItemOutput struct {
	Success         bool
	RemovedCategory bool
	RemovedLocation bool
}

// DeleteItemUseCase handles item deletion logic. Deleting the last item of a
// category or location removes that category or location as well.
type DeleteItemUseCase struct {
	itemRepo     adapter.ItemRepository
	categoryRepo adapter.CategoryRepository
	locationRepo adapter.LocationRepository
}

// NewDeleteItemUseCase creates a new DeleteItemUseCase instance.
func NewDeleteItemUseCase(
	itemRepo adapter.ItemRepository,
	categoryRepo adapter.CategoryRepository,
	locationRepo adapter.LocationRepository,
) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

// Execute performs the item deletion.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, input DeleteItemInput) (*DeleteItemOutput, error) {
	// Find the existing item to capture its references
	item, err := uc.itemRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrItemNotFound) {
			return nil, domainerror.NewItemError(
				domainerror.ErrCodeItemNotFound,
				"item not found",
				domainerror.ErrItemNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}

	// Delete the item
	if err := uc.itemRepo.Delete(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("failed to delete item: %w", err)
	}

	output := &DeleteItemOutput{Success: true}

	// Remove the former category when no items reference it anymore
	if item.CategoryID != nil {
		removed, err := uc.cleanupCategory(ctx, *item.CategoryID)
		if err != nil {
			return nil, err
		}
		output.RemovedCategory = removed
	}

	// Remove the former location when no items reference it anymore
	if item.LocationID != nil {
		removed, err := uc.cleanupLocation(ctx, *item.LocationID)
		if err != nil {
			return nil, err
		}
		output.RemovedLocation = removed
	}

	return output, nil
}

func (uc *DeleteItemUseCase) cleanupCategory(ctx context.Context, categoryID uuid.UUID) (bool, error) {
	count, err := uc.itemRepo.CountByCategory(ctx, categoryID)
	if err != nil {
		return false, fmt.Errorf("failed to count items in category: %w", err)
	}
	if count > 0 {
		return false, nil
	}
	if err := uc.categoryRepo.Delete(ctx, categoryID); err != nil {
		return false, fmt.Errorf("failed to delete empty category: %w", err)
	}
	return true, nil
}

func (uc *DeleteItemUseCase) cleanupLocation(ctx context.Context, locationID uuid.UUID) (bool, error) {
	count, err := uc.itemRepo.CountByLocation(ctx, locationID)
	if err != nil {
		return false, fmt.Errorf("failed to count items in location: %w", err)
	}
	if count > 0 {
		return false, nil
	}
	if err := uc.locationRepo.Delete(ctx, locationID); err != nil {
		return false, fmt.Errorf("failed to delete empty location: %w", err)
	}
	return true, nil
}
