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

// UpdateItemInput represents the input for item update. Nil fields are left
// unchanged.
type UpdateItemInput struct {
	ID           uuid.UUID
	Name         *string
	Quantity     *int64        // Zero disables quantity tracking
	ImageData    *[]byte       // Pointer to an empty slice clears the image
	SymbolName   *string       // Empty string clears the symbol and its color
	SymbolColor  *entity.Color
	CategoryName *string // Empty string removes the category reference
	LocationName *string // Empty string removes the location reference
}

// UpdateItemOutput represents the output of item update.
type UpdateItemOutput struct {
	Item     *entity.Item
	Category *entity.Category // nil when the item carries no category
	Location *entity.Location // nil when the item carries no location
}

// UpdateItemUseCase handles item update logic.
type UpdateItemUseCase struct {
	itemRepo     adapter.ItemRepository
	categoryRepo adapter.CategoryRepository
	locationRepo adapter.LocationRepository
}

// NewUpdateItemUseCase creates a new UpdateItemUseCase instance.
func NewUpdateItemUseCase(
	itemRepo adapter.ItemRepository,
	categoryRepo adapter.CategoryRepository,
	locationRepo adapter.LocationRepository,
) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

// Execute performs the item update.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, input UpdateItemInput) (*UpdateItemOutput, error) {
	// Find the existing item
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

	// Update name if provided
	if input.Name != nil {
		if len(*input.Name) > MaxItemNameLength {
			return nil, domainerror.NewItemError(
				domainerror.ErrCodeItemNameTooLong,
				fmt.Sprintf("item name must not exceed %d characters", MaxItemNameLength),
				domainerror.ErrItemNameTooLong,
			)
		}
		item.Name = *input.Name
	}

	// Update quantity if provided
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, domainerror.NewItemError(
				domainerror.ErrCodeNegativeQuantity,
				"quantity must not be negative",
				domainerror.ErrNegativeQuantity,
			)
		}
		quantity := *input.Quantity
		item.Quantity = &quantity
	}

	// Update image if provided
	if input.ImageData != nil {
		if len(*input.ImageData) > MaxImageDataBytes {
			return nil, domainerror.NewItemError(
				domainerror.ErrCodeImageTooLarge,
				fmt.Sprintf("image data must not exceed %d bytes", MaxImageDataBytes),
				domainerror.ErrImageTooLarge,
			)
		}
		if len(*input.ImageData) == 0 {
			item.ImageData = nil
		} else {
			item.ImageData = *input.ImageData
		}
	}

	// Update symbol color before the symbol itself so that clearing the
	// symbol wins over a color sent in the same request
	if input.SymbolColor != nil {
		color := *input.SymbolColor
		item.SymbolColor = &color
	}
	if input.SymbolName != nil {
		item.SymbolName = *input.SymbolName
		if item.SymbolName == "" {
			item.SymbolColor = nil
		}
	}

	// Update category reference if provided
	if input.CategoryName != nil {
		if *input.CategoryName == "" {
			item.CategoryID = nil
		} else {
			category, err := findOrCreateCategory(ctx, uc.categoryRepo, input.CategoryName)
			if err != nil {
				return nil, err
			}
			item.CategoryID = &category.ID
		}
	}

	// Update location reference if provided
	if input.LocationName != nil {
		if *input.LocationName == "" {
			item.LocationID = nil
		} else {
			location, err := findOrCreateLocation(ctx, uc.locationRepo, input.LocationName)
			if err != nil {
				return nil, err
			}
			item.LocationID = &location.ID
		}
	}

	item.Touch()

	// Save updated item
	if err := uc.itemRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	output := &UpdateItemOutput{Item: item}

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
