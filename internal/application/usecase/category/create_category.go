// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

// MaxCategoryNameLength is the maximum allowed length for category names.
const MaxCategoryNameLength = 50

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name         string
	DisplayInRow *bool // Optional, defaults to true
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic. Categories are
// identified by UUID, so two categories may share a name; deduplication by
// name only happens in the suggestion layer.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	// Validate name
	if input.Name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameEmpty,
			"category name must not be empty",
			domainerror.ErrCategoryNameEmpty,
		)
	}
	if len(input.Name) > MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	category := entity.NewCategory(input.Name)
	if input.DisplayInRow != nil {
		category.DisplayInRow = *input.DisplayInRow
	}

	// New categories are appended at the end of the sort order
	maxOrder, err := uc.categoryRepo.MaxSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get max sort order: %w", err)
	}
	category.SortOrder = maxOrder + 1

	// Save category to the local store
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
