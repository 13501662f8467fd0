// Package maintenance contains catalog maintenance use cases.
package maintenance

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
)

// CleanupCatalogInput represents the input for the catalog cleanup pass.
type CleanupCatalogInput struct{}

// CleanupCatalogOutput reports what the cleanup pass removed.
type CleanupCatalogOutput struct {
	ClearedReferences int
	RemovedGhostItems int
	RemovedCategories int
	RemovedLocations  int
}

// CleanupCatalogUseCase sweeps the catalog for leftovers that normal
// operations cannot produce but sync overwrites and crashes can: items
// pointing at missing categories or locations, ghost items with no content,
// and categories or locations no item references anymore.
type CleanupCatalogUseCase struct {
	itemRepo     adapter.ItemRepository
	categoryRepo adapter.CategoryRepository
	locationRepo adapter.LocationRepository
}

// NewCleanupCatalogUseCase creates a new CleanupCatalogUseCase instance.
func NewCleanupCatalogUseCase(
	itemRepo adapter.ItemRepository,
	categoryRepo adapter.CategoryRepository,
	locationRepo adapter.LocationRepository,
) *CleanupCatalogUseCase {
	return &CleanupCatalogUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

// Execute performs the cleanup pass. References are cleared before ghost
// detection so an item whose only content was a dangling reference is
// removed in the same pass, and empty categories and locations are counted
// after ghost items are gone.
func (uc *CleanupCatalogUseCase) Execute(ctx context.Context, input CleanupCatalogInput) (*CleanupCatalogOutput, error) {
	items, err := uc.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	locations, err := uc.locationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}

	categoryIDs := make(map[uuid.UUID]struct{}, len(categories))
	for _, category := range categories {
		categoryIDs[category.ID] = struct{}{}
	}
	locationIDs := make(map[uuid.UUID]struct{}, len(locations))
	for _, location := range locations {
		locationIDs[location.ID] = struct{}{}
	}

	output := &CleanupCatalogOutput{}

	// Clear references to categories and locations that no longer exist
	for _, item := range items {
		changed := false
		if item.CategoryID != nil {
			if _, ok := categoryIDs[*item.CategoryID]; !ok {
				item.CategoryID = nil
				changed = true
				output.ClearedReferences++
			}
		}
		if item.LocationID != nil {
			if _, ok := locationIDs[*item.LocationID]; !ok {
				item.LocationID = nil
				changed = true
				output.ClearedReferences++
			}
		}
		if changed {
			item.Touch()
			if err := uc.itemRepo.Update(ctx, item); err != nil {
				return nil, fmt.Errorf("failed to clear item references: %w", err)
			}
		}
	}

	// Remove ghost items
	for _, item := range items {
		if !item.IsGhost() {
			continue
		}
		if err := uc.itemRepo.Delete(ctx, item.ID); err != nil {
			return nil, fmt.Errorf("failed to delete ghost item: %w", err)
		}
		output.RemovedGhostItems++
	}

	// Remove categories no item references
	for _, category := range categories {
		count, err := uc.itemRepo.CountByCategory(ctx, category.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count items in category: %w", err)
		}
		if count > 0 {
			continue
		}
		if err := uc.categoryRepo.Delete(ctx, category.ID); err != nil {
			return nil, fmt.Errorf("failed to delete orphaned category: %w", err)
		}
		output.RemovedCategories++
	}

	// Remove locations no item references
	for _, location := range locations {
		count, err := uc.itemRepo.CountByLocation(ctx, location.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count items in location: %w", err)
		}
		if count > 0 {
			continue
		}
		if err := uc.locationRepo.Delete(ctx, location.ID); err != nil {
			return nil, fmt.Errorf("failed to delete orphaned location: %w", err)
		}
		output.RemovedLocations++
	}

	return output, nil
}
