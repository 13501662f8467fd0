// Package item contains item-related use cases.
package item

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// ListItemsInput represents the optional filters for item listing.
type ListItemsInput struct {
	CategoryID *uuid.UUID
	LocationID *uuid.UUID
}

// ListItemsOutput carries the items plus lookup tables for their references.
type ListItemsOutput struct {
	Items      []*entity.Item
	Categories map[uuid.UUID]*entity.Category
	Locations  map[uuid.UUID]*entity.Location
}

// ListItemsUseCase handles item listing logic.
type ListItemsUseCase struct {
	itemRepo     adapter.ItemRepository
	categoryRepo adapter.CategoryRepository
	locationRepo adapter.LocationRepository
}

// NewListItemsUseCase creates a new ListItemsUseCase instance.
func NewListItemsUseCase(
	itemRepo adapter.ItemRepository,
	categoryRepo adapter.CategoryRepository,
	locationRepo adapter.LocationRepository,
) *ListItemsUseCase {
	return &ListItemsUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

// Execute performs the item listing. When a category or location filter is
// given only items referencing it are returned; the category filter takes
// precedence when both are set.
func (uc *ListItemsUseCase) Execute(ctx context.Context, input ListItemsInput) (*ListItemsOutput, error) {
	var (
		items []*entity.Item
		err   error
	)

	switch {
	case input.CategoryID != nil:
		items, err = uc.itemRepo.FindByCategory(ctx, *input.CategoryID)
	case input.LocationID != nil:
		items, err = uc.itemRepo.FindByLocation(ctx, *input.LocationID)
	default:
		items, err = uc.itemRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	// Load references once and index them for the presentation layer
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	locations, err := uc.locationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	output := &ListItemsOutput{
		Items:      items,
		Categories: make(map[uuid.UUID]*entity.Category, len(categories)),
		Locations:  make(map[uuid.UUID]*entity.Location, len(locations)),
	}
	for _, category := range categories {
		output.Categories[category.ID] = category
	}
	for _, location := range locations {
		output.Locations[location.ID] = location
	}

	return output, nil
}
