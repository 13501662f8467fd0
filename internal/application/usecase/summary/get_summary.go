// Package summary contains the catalog summary use case.
package summary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// GetSummaryInput represents the input for the catalog summary.
type GetSummaryInput struct{}

// CategorySummary represents one category row in the summary.
type CategorySummary struct {
	ID           uuid.UUID
	Name         string
	ItemCount    int64
	DisplayInRow bool
}

// LocationSummary represents one location row in the summary.
type LocationSummary struct {
	ID           uuid.UUID
	Name         string
	Color        entity.Color
	ItemCount    int64
	DisplayInRow bool
}

// GetSummaryOutput aggregates the catalog counts the overview screen shows.
type GetSummaryOutput struct {
	TotalItems    int64
	TotalQuantity int64
	Uncategorized int64
	Unlocated     int64
	Categories    []CategorySummary
	Locations     []LocationSummary
}

// GetSummaryUseCase computes per-category and per-location item counts plus
// catalog totals. Rows keep their catalog sort order; DisplayInRow is passed
// through so the client can decide which groups render as shelf rows.
type GetSummaryUseCase struct {
	itemRepo     adapter.ItemRepository
	categoryRepo adapter.CategoryRepository
	locationRepo adapter.LocationRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	itemRepo adapter.ItemRepository,
	categoryRepo adapter.CategoryRepository,
	locationRepo adapter.LocationRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

// Execute computes the summary.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
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

	output := &GetSummaryOutput{
		TotalItems: int64(len(items)),
		Categories: make([]CategorySummary, 0, len(categories)),
		Locations:  make([]LocationSummary, 0, len(locations)),
	}

	categoryCounts := make(map[uuid.UUID]int64, len(categories))
	locationCounts := make(map[uuid.UUID]int64, len(locations))
	for _, item := range items {
		if item.Quantity != nil {
			output.TotalQuantity += *item.Quantity
		}
		if item.CategoryID != nil {
			categoryCounts[*item.CategoryID]++
		} else {
			output.Uncategorized++
		}
		if item.LocationID != nil {
			locationCounts[*item.LocationID]++
		} else {
			output.Unlocated++
		}
	}

	for _, category := range categories {
		output.Categories = append(output.Categories, CategorySummary{
			ID:           category.ID,
			Name:         category.Name,
			ItemCount:    categoryCounts[category.ID],
			DisplayInRow: category.DisplayInRow,
		})
	}
	for _, location := range locations {
		output.Locations = append(output.Locations, LocationSummary{
			ID:           location.ID,
			Name:         location.Name,
			Color:        location.Color,
			ItemCount:    locationCounts[location.ID],
			DisplayInRow: location.DisplayInRow,
		})
	}

	return output, nil
}
