// Package item contains item-related use cases.
package item

import (
	"context"
	"fmt"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

const (
	// MaxItemNameLength is the maximum allowed length for item names.
	MaxItemNameLength = 100
	// MaxImageDataBytes is the maximum accepted size for item image payloads.
	MaxImageDataBytes = 5 << 20
	// MaxLinkedNameLength is the maximum length for category and location
	// names resolved through the find-or-create path.
	MaxLinkedNameLength = 50
)

// CreateItemInput represents the input for item creation.
type CreateItemInput struct {
	Name         string
	Quantity     *int64        // Optional, defaults to DefaultItemQuantity; zero disables tracking
	ImageData    []byte        // Optional
	SymbolName   string        // Optional
	SymbolColor  *entity.Color // Optional, paired with the symbol
	CategoryName *string       // Optional, resolved find-or-create by name
	LocationName *string       // Optional, resolved find-or-create by name
}

// CreateItemOutput represents the output of item creation.
type CreateItemOutput struct {
	Item     *entity.Item
	Category *entity.Category // nil when the item carries no category
	Location *entity.Location // nil when the item carries no location
}

// CreateItemUseCase handles item creation logic.
type CreateItemUseCase struct {
	itemRepo     adapter.ItemRepository
	categoryRepo adapter.CategoryRepository
	locationRepo adapter.LocationRepository
}

// NewCreateItemUseCase creates a new CreateItemUseCase instance.
func NewCreateItemUseCase(
	itemRepo adapter.ItemRepository,
	categoryRepo adapter.CategoryRepository,
	locationRepo adapter.LocationRepository,
) *CreateItemUseCase {
	return &CreateItemUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

// Execute performs the item creation.
func (uc *CreateItemUseCase) Execute(ctx context.Context, input CreateItemInput) (*CreateItemOutput, error) {
	// Validate name length
	if len(input.Name) > MaxItemNameLength {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeItemNameTooLong,
			fmt.Sprintf("item name must not exceed %d characters", MaxItemNameLength),
			domainerror.ErrItemNameTooLong,
		)
	}

	// Validate quantity if provided
	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeNegativeQuantity,
			"quantity must not be negative",
			domainerror.ErrNegativeQuantity,
		)
	}

	// Validate image size
	if len(input.ImageData) > MaxImageDataBytes {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeImageTooLarge,
			fmt.Sprintf("image data must not exceed %d bytes", MaxImageDataBytes),
			domainerror.ErrImageTooLarge,
		)
	}

	// Apply the default quantity when none is given. An explicit zero keeps
	// the quantity untracked.
	quantity := input.Quantity
	if quantity == nil {
		q := entity.DefaultItemQuantity
		quantity = &q
	}

	item := entity.NewItem(input.Name, quantity)
	item.ImageData = input.ImageData
	item.SymbolName = input.SymbolName
	item.SymbolColor = input.SymbolColor

	// New items are appended at the end of the sort order
	maxOrder, err := uc.itemRepo.MaxSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get max sort order: %w", err)
	}
	item.SortOrder = maxOrder + 1

	// Resolve category and location references by name
	category, err := findOrCreateCategory(ctx, uc.categoryRepo, input.CategoryName)
	if err != nil {
		return nil, err
	}
	if category != nil {
		item.CategoryID = &category.ID
	}

	location, err := findOrCreateLocation(ctx, uc.locationRepo, input.LocationName)
	if err != nil {
		return nil, err
	}
	if location != nil {
		item.LocationID = &location.ID
	}

	// Save item to the local store
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return &CreateItemOutput{
		Item:     item,
		Category: category,
		Location: location,
	}, nil
}

// findOrCreateCategory resolves a category by name, creating one at the end
// of the category sort order when no match exists. A nil or empty name
// resolves to no category.
func findOrCreateCategory(ctx context.Context, repo adapter.CategoryRepository, name *string) (*entity.Category, error) {
	if name == nil || *name == "" {
		return nil, nil
	}

	if len(*name) > MaxLinkedNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxLinkedNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	category, err := repo.FindByName(ctx, *name)
	if err != nil {
		return nil, fmt.Errorf("failed to find category by name: %w", err)
	}
	if category != nil {
		return category, nil
	}

	category = entity.NewCategory(*name)
	maxOrder, err := repo.MaxSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get max category sort order: %w", err)
	}
	category.SortOrder = maxOrder + 1

	if err := repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// findOrCreateLocation mirrors findOrCreateCategory for locations.
func findOrCreateLocation(ctx context.Context, repo adapter.LocationRepository, name *string) (*entity.Location, error) {
	if name == nil || *name == "" {
		return nil, nil
	}

	if len(*name) > MaxLinkedNameLength {
		return nil, domainerror.NewLocationError(
			domainerror.ErrCodeLocationNameTooLong,
			fmt.Sprintf("location name must not exceed %d characters", MaxLinkedNameLength),
			domainerror.ErrLocationNameTooLong,
		)
	}

	location, err := repo.FindByName(ctx, *name)
	if err != nil {
		return nil, fmt.Errorf("failed to find location by name: %w", err)
	}
	if location != nil {
		return location, nil
	}

	location = entity.NewLocation(*name)
	maxOrder, err := repo.MaxSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get max location sort order: %w", err)
	}
	location.SortOrder = maxOrder + 1

	if err := repo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	return location, nil
}
