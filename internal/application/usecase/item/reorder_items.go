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

// ReorderItemsInput represents the input for item reordering. Items receive
// sort orders matching their position in OrderedIDs.
type ReorderItemsInput struct {
	OrderedIDs []uuid.UUID
}

// ReorderItemsOutput represents the output of item reordering.
type ReorderItemsOutput struct {
	Items []*entity.Item
}

// ReorderItemsUseCase handles item reordering logic.
type ReorderItemsUseCase struct {
	itemRepo adapter.ItemRepository
}

// NewReorderItemsUseCase creates a new ReorderItemsUseCase instance.
func NewReorderItemsUseCase(itemRepo adapter.ItemRepository) *ReorderItemsUseCase {
	return &ReorderItemsUseCase{
		itemRepo: itemRepo,
	}
}

// Execute performs the item reordering.
func (uc *ReorderItemsUseCase) Execute(ctx context.Context, input ReorderItemsInput) (*ReorderItemsOutput, error) {
	// Validate that at least one item is provided
	if len(input.OrderedIDs) == 0 {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeItemOrderEmpty,
			"at least one item must be provided",
			domainerror.ErrItemOrderEmpty,
		)
	}

	// Verify all items exist before touching any of them
	for _, id := range input.OrderedIDs {
		if _, err := uc.itemRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, domainerror.ErrItemNotFound) {
				return nil, domainerror.NewItemError(
					domainerror.ErrCodeItemNotFound,
					fmt.Sprintf("item not found: %s", id),
					domainerror.ErrItemNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find item: %w", err)
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
	if err := uc.itemRepo.UpdateSortOrders(ctx, updates); err != nil {
		return nil, fmt.Errorf("failed to update item sort orders: %w", err)
	}

	// Fetch the reordered list
	items, err := uc.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reordered items: %w", err)
	}

	return &ReorderItemsOutput{
		Items: items,
	}, nil
}
