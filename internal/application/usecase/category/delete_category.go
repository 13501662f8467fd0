// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	ID uuid.UUID
}

// DeleteCategoryOutput represents the output of category deletion.
type DeleteCategoryOutput struct {
	Success bool
}

// DeleteCategoryUseCase handles category deletion logic. Items referencing
// the category keep existing; the repository clears their reference.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) (*DeleteCategoryOutput, error) {
	// Find the existing category
	if _, err := uc.categoryRepo.FindByID(ctx, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	// Delete the category
	if err := uc.categoryRepo.Delete(ctx, input.ID); err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return &DeleteCategoryOutput{
		Success: true,
	}, nil
}
