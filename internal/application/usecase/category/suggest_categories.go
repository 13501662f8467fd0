// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
)

// SuggestCategoriesInput represents the input for category name suggestions.
// An empty prefix matches every category.
type SuggestCategoriesInput struct {
	Prefix string
}

// SuggestCategoriesOutput carries the matching names in sort order. Names
// appearing on several categories are listed once.
type SuggestCategoriesOutput struct {
	Names []string
}

// SuggestCategoriesUseCase handles autocomplete suggestions for category
// names.
type SuggestCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSuggestCategoriesUseCase creates a new SuggestCategoriesUseCase instance.
func NewSuggestCategoriesUseCase(categoryRepo adapter.CategoryRepository) *SuggestCategoriesUseCase {
	return &SuggestCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the suggestion lookup. Matching is a case-insensitive
// prefix match.
func (uc *SuggestCategoriesUseCase) Execute(ctx context.Context, input SuggestCategoriesInput) (*SuggestCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	prefix := strings.ToLower(input.Prefix)
	seen := make(map[string]struct{}, len(categories))
	names := make([]string, 0, len(categories))

	for _, category := range categories {
		if prefix != "" && !strings.HasPrefix(strings.ToLower(category.Name), prefix) {
			continue
		}
		if _, ok := seen[category.Name]; ok {
			continue
		}
		seen[category.Name] = struct{}{}
		names = append(names, category.Name)
	}

	return &SuggestCategoriesOutput{
		Names: names,
	}, nil
}
