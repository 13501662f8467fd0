// Package item contains item-related use cases.
package item

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

// GetItemInput represents the input for item retrieval.
type GetItemInput struct {
	ID uuid.UUID
}

// GetItemOutput carries the item together with its resolved references.
type GetItemOutput struct {
	Item     *entity.Item
	Category *entity.Category // nil when the item carries no category
	Location *entity.Location // nil when the item carries no location
}

// GetItemUseCase handles item retrieval logic.
type GetItemUseCase struct {
	itemRepo     adapter.ItemRepository
	categoryRepo adapter.CategoryRepository
	locationRepo adapter.LocationRepository
}

// NewGetItemUseCase creates a new GetItemUseCase instance.
func NewGetItemUseCase(
	itemRepo adapter.ItemRepository,
	categoryRepo adapter.CategoryRepository,
	locationRepo adapter.LocationRepository,
) *GetItemUseCase {
	return &GetItemUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

// Execute performs the item retrieval.
func (uc *GetItemUseCase) Execute(ctx context.Context, input GetItemInput) (*GetItemOutput, error) {
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

	output := &GetItemOutput{Item: item}

	// A dangling reference resolves to nil; the maintenance pass removes it.
	if item.CategoryID != nil {
		category, err := uc.categoryRepo.FindByID(ctx, *item.CategoryID)
		if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		output.Category = category
	}

	if item.LocationID != nil {
		location, err := uc.locationRepo.FindByID(ctx, *item.LocationID)
		if err != nil && !errors.Is(err, domainerror.ErrLocationNotFound) {
			return nil, fmt.Errorf("failed to find location: %w", err)
		}
		output.Location = location
	}

	return output, nil
}
