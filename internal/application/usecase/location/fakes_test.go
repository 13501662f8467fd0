// Package location contains location-related use cases.
package location

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

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

// countingItemRepo stubs ItemRepository with fixed per-location counts; only
// the counting methods matter for location listing.
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
	return 0, nil
}
func (s *countingItemRepo) CountByLocation(ctx context.Context, locationID uuid.UUID) (int64, error) {
	return s.counts[locationID], nil
}

func strPtr(s string) *string {
	return &s
}
