// Package category contains category-related use cases.
package category

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

// fakeCategoryRepo is an in-memory CategoryRepository for use case tests.
type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

func (f *fakeCategoryRepo) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	all, _ := f.FindAll(ctx)
	for _, category := range all {
		if category.Name == name {
			return category, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(f.categories))
	for _, category := range f.categories {
		copied := *category
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	if _, ok := f.categories[category.ID]; !ok {
		return domainerror.ErrCategoryNotFound
	}
	copied := *category
	f.categories[category.ID] = &copied
	return nil
}

func (f *fakeCategoryRepo) UpdateSortOrders(ctx context.Context, updates []entity.SortOrderUpdate) error {
	for _, update := range updates {
		if category, ok := f.categories[update.ID]; ok {
			category.SortOrder = update.SortOrder
		}
	}
	return nil
}

func (f *fakeCategoryRepo) MaxSortOrder(ctx context.Context) (int, error) {
	max := -1
	for _, category := range f.categories {
		if category.SortOrder > max {
			max = category.SortOrder
		}
	}
	return max, nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.categories, id)
	return nil
}

// countingItemRepo stubs ItemRepository with fixed per-category counts; only
// CountByCategory carries behavior here.
type countingItemRepo struct {
	counts map[uuid.UUID]int64
}

func (s *countingItemRepo) Create(ctx context.Context, item *entity.Item) error { return nil }
func (s *countingItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	return nil, domainerror.ErrItemNotFound
}
func (s *countingItemRepo) FindAll(ctx context.Context) ([]*entity.Item, error) { return nil, nil }
func (s *countingItemRepo) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Item, error) {
	return nil, nil
}
func (s *countingItemRepo) FindByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Item, error) {
	return nil, nil
}
func (s *countingItemRepo) Update(ctx context.Context, item *entity.Item) error { return nil }
func (s *countingItemRepo) UpdateSortOrders(ctx context.Context, updates []entity.SortOrderUpdate) error {
	return nil
}
func (s *countingItemRepo) MaxSortOrder(ctx context.Context) (int, error) { return -1, nil }
func (s *countingItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}
func (s *countingItemRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	return s.counts[categoryID], nil
}
func (s *countingItemRepo) CountByLocation(ctx context.Context, locationID uuid.UUID) (int64, error) {
	return 0, nil
}

func boolPtr(v bool) *bool {
	return &v
}

func strPtr(s string) *string {
	return &s
}
