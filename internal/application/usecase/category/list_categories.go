// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct{}

// ListCategoriesOutput represents the output of listing categories, ordered
// by sort order then name.
type ListCategoriesOutput struct {
	Categories []*entity.CategoryWithCount
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
	itemRepo     adapter.ItemRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository, itemRepo adapter.ItemRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	output := &ListCategoriesOutput{
		Categories: make([]*entity.CategoryWithCount, len(categories)),
	}
	for i, category := range categories {
		count, err := uc.itemRepo.CountByCategory(ctx, category.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count items in category: %w", err)
		}
		output.Categories[i] = &entity.CategoryWithCount{
			Category:  category,
			ItemCount: count,
		}
	}

	return output, nil
}
