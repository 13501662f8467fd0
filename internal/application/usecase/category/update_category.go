// Package category contains category-related use cases.
package category

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

// UpdateCategoryInput represents the input for category update. Nil fields
// are left unchanged.
type UpdateCategoryInput struct {
	ID           uuid.UUID
	Name         *string
	DisplayInRow *bool
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	// Find the existing category
	category, err := uc.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	// Update name if provided
	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameEmpty,
				"category name must not be empty",
				domainerror.ErrCategoryNameEmpty,
			)
		}
		if len(*input.Name) > MaxCategoryNameLength {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNameTooLong,
				fmt.Sprintf("category name must not exceed %d characters", MaxCategoryNameLength),
				domainerror.ErrCategoryNameTooLong,
			)
		}
		category.Name = *input.Name
	}

	// Update row visibility if provided
	if input.DisplayInRow != nil {
		category.DisplayInRow = *input.DisplayInRow
	}

	// Update timestamp
	category.UpdatedAt = time.Now().UTC()

	// Save updated category
	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
