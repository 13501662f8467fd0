// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

// ReorderCategoriesInput represents the input for category reordering.
// Categories receive sort orders matching their position in OrderedIDs.
type ReorderCategoriesInput struct {
	OrderedIDs []uuid.UUID
}

// ReorderCategoriesOutput represents the output of category reordering.
type ReorderCategoriesOutput struct {
	Categories []*entity.Category
}

// ReorderCategoriesUseCase handles category reordering logic.
type ReorderCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewReorderCategoriesUseCase creates a new ReorderCategoriesUseCase instance.
func NewReorderCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ReorderCategoriesUseCase {
	return &ReorderCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category reordering.
func (uc *ReorderCategoriesUseCase) Execute(ctx context.Context, input ReorderCategoriesInput) (*ReorderCategoriesOutput, error) {
	// Validate that at least one category is provided
	if len(input.OrderedIDs) == 0 {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryOrderEmpty,
			"at least one category must be provided",
			domainerror.ErrCategoryOrderEmpty,
		)
	}

	// Verify all categories exist before touching any of them
	for _, id := range input.OrderedIDs {
		if _, err := uc.categoryRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, domainerror.NewCategoryError(
					domainerror.ErrCodeCategoryNotFound,
					fmt.Sprintf("category not found: %s", id),
					domainerror.ErrCategoryNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find category: %w", err)
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
	if err := uc.categoryRepo.UpdateSortOrders(ctx, updates); err != nil {
		return nil, fmt.Errorf("failed to update category sort orders: %w", err)
	}

	// Fetch the reordered list
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reordered categories: %w", err)
	}

	return &ReorderCategoriesOutput{
		Categories: categories,
	}, nil
}
