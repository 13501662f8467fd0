// Package summary contains the catalog summary use case.
package summary

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

// fakeItemRepo is an in-memory ItemRepository for use case tests.
type fakeItemRepo struct {
	items   map[uuid.UUID]*entity.Item
	findErr error
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[uuid.UUID]*entity.Item)}
}

func (f *fakeItemRepo) Create(ctx context.Context, item *entity.Item) error {
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeItemRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, domainerror.ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeItemRepo) FindAll(ctx context.Context) ([]*entity.Item, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := make([]*entity.Item, 0, len(f.items))
	for _, item := range f.items {
		copied := *item
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

func (f *fakeItemRepo) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]*entity.Item, error) {
	all, _ := f.FindAll(ctx)
	out := make([]*entity.Item, 0, len(all))
	for _, item := range all {
		if item.CategoryID != nil && *item.CategoryID == categoryID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) FindByLocation(ctx context.Context, locationID uuid.UUID) ([]*entity.Item, error) {
	all, _ := f.FindAll(ctx)
	out := make([]*entity.Item, 0, len(all))
	for _, item := range all {
		if item.LocationID != nil && *item.LocationID == locationID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeItemRepo) Update(ctx context.Context, item *entity.Item) error {
	if _, ok := f.items[item.ID]; !ok {
		return domainerror.ErrItemNotFound
	}
	copied := *item
	f.items[item.ID] = &copied
	return nil
}

func (f *fakeItemRepo) UpdateSortOrders(ctx context.Context, updates []entity.SortOrderUpdate) error {
	for _, update := range updates {
		if item, ok := f.items[update.ID]; ok {
			item.SortOrder = update.SortOrder
			item.Touch()
		}
	}
	return nil
}

func (f *fakeItemRepo) MaxSortOrder(ctx context.Context) (int, error) {
	max := -1
	for _, item := range f.items {
		if item.SortOrder > max {
			max = item.SortOrder
		}
	}
	return max, nil
}

func (f *fakeItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeItemRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, item := range f.items {
		if item.CategoryID != nil && *item.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (f *fakeItemRepo) CountByLocation(ctx context.Context, locationID uuid.UUID) (int64, error) {
	var count int64
	for _, item := range f.items {
		if item.LocationID != nil && *item.LocationID == locationID {
			count++
		}
	}
	return count, nil
}

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

// fakeLocationRepo is an in-memory LocationRepository for use case tests.
type fakeLocationRepo struct {
	locations map[uuid.UUID]*entity.Location
}

func newFakeLocationRepo() *fakeLocationRepo {
	return &fakeLocationRepo{locations: make(map[uuid.UUID]*entity.Location)}
}

func (f *fakeLocationRepo) Create(ctx context.Context, location *entity.Location) error {
	copied := *location
	f.locations[location.ID] = &copied
	return nil
}

func (f *fakeLocationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	location, ok := f.locations[id]
	if !ok {
		return nil, domainerror.ErrLocationNotFound
	}
	copied := *location
	return &copied, nil
}

func (f *fakeLocationRepo) FindByName(ctx context.Context, name string) (*entity.Location, error) {
	all, _ := f.FindAll(ctx)
	for _, location := range all {
		if location.Name == name {
			return location, nil
		}
	}
	return nil, nil
}

func (f *fakeLocationRepo) FindAll(ctx context.Context) ([]*entity.Location, error) {
	out := make([]*entity.Location, 0, len(f.locations))
	for _, location := range f.locations {
		copied := *location
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

func (f *fakeLocationRepo) Update(ctx context.Context, location *entity.Location) error {
	if _, ok := f.locations[location.ID]; !ok {
		return domainerror.ErrLocationNotFound
	}
	copied := *location
	f.locations[location.ID] = &copied
	return nil
}

func (f *fakeLocationRepo) UpdateSortOrders(ctx context.Context, updates []entity.SortOrderUpdate) error {
	for _, update := range updates {
		if location, ok := f.locations[update.ID]; ok {
			location.SortOrder = update.SortOrder
		}
	}
	return nil
}

func (f *fakeLocationRepo) MaxSortOrder(ctx context.Context) (int, error) {
	max := -1
	for _, location := range f.locations {
		if location.SortOrder > max {
			max = location.SortOrder
		}
	}
	return max, nil
}

func (f *fakeLocationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.locations, id)
	return nil
}
