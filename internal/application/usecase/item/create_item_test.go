// Package item contains item-related use cases.
package item

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

func TestCreateItem_AppliesDefaults(t *testing.T) {
	itemRepo := newFakeItemRepo()
	uc := NewCreateItemUseCase(itemRepo, newFakeCategoryRepo(), newFakeLocationRepo())

	output, err := uc.Execute(context.Background(), CreateItemInput{Name: "Hammer"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	item := output.Item
	if item.Name != "Hammer" {
		t.Errorf("expected name Hammer, got %s", item.Name)
	}
	if item.Quantity == nil || *item.Quantity != entity.DefaultItemQuantity {
		t.Errorf("expected default quantity %d, got %v", entity.DefaultItemQuantity, item.Quantity)
	}
	if item.SortOrder != 0 {
		t.Errorf("expected sort order 0 for first item, got %d", item.SortOrder)
	}
	if item.CreatedAt.IsZero() || item.ModifiedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if output.Category != nil || output.Location != nil {
		t.Error("expected no category or location")
	}
	if itemRepo.get(item.ID) == nil {
		t.Error("expected item to be persisted")
	}
}

func TestCreateItem_ExplicitZeroQuantityDisablesTracking(t *testing.T) {
	uc := NewCreateItemUseCase(newFakeItemRepo(), newFakeCategoryRepo(), newFakeLocationRepo())

	output, err := uc.Execute(context.Background(), CreateItemInput{
		Name:     "Screws",
		Quantity: int64Ptr(0),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output.Item.QuantityTracked() {
		t.Error("expected quantity tracking to be disabled")
	}
}

func TestCreateItem_ValidatesInput(t *testing.T) {
	tests := []struct {
		name        string
		input       CreateItemInput
		expectedErr error
	}{
		{
			name:        "name too long",
			input:       CreateItemInput{Name: strings.Repeat("a", MaxItemNameLength+1)},
			expectedErr: domainerror.ErrItemNameTooLong,
		},
		{
			name:        "negative quantity",
			input:       CreateItemInput{Name: "Hammer", Quantity: int64Ptr(-1)},
			expectedErr: domainerror.ErrNegativeQuantity,
		},
		{
			name:        "image too large",
			input:       CreateItemInput{Name: "Hammer", ImageData: make([]byte, MaxImageDataBytes+1)},
			expectedErr: domainerror.ErrImageTooLarge,
		},
		{
			name:        "linked category name too long",
			input:       CreateItemInput{Name: "Hammer", CategoryName: strPtr(strings.Repeat("a", MaxLinkedNameLength+1))},
			expectedErr: domainerror.ErrCategoryNameTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateItemUseCase(newFakeItemRepo(), newFakeCategoryRepo(), newFakeLocationRepo())

			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestCreateItem_AppendsAtEndOfSortOrder(t *testing.T) {
	itemRepo := newFakeItemRepo()
	existing := entity.NewItem("Wrench", nil)
	existing.SortOrder = 4
	itemRepo.Create(context.Background(), existing)

	uc := NewCreateItemUseCase(itemRepo, newFakeCategoryRepo(), newFakeLocationRepo())

	output, err := uc.Execute(context.Background(), CreateItemInput{Name: "Hammer"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output.Item.SortOrder != 5 {
		t.Errorf("expected sort order 5, got %d", output.Item.SortOrder)
	}
}

func TestCreateItem_CreatesMissingCategoryAndLocation(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	locationRepo := newFakeLocationRepo()
	uc := NewCreateItemUseCase(newFakeItemRepo(), categoryRepo, locationRepo)

	output, err := uc.Execute(context.Background(), CreateItemInput{
		Name:         "Hammer",
		CategoryName: strPtr("Tools"),
		LocationName: strPtr("Garage"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output.Category == nil || output.Category.Name != "Tools" {
		t.Fatalf("expected created category Tools, got %v", output.Category)
	}
	if output.Location == nil || output.Location.Name != "Garage" {
		t.Fatalf("expected created location Garage, got %v", output.Location)
	}
	if output.Item.CategoryID == nil || *output.Item.CategoryID != output.Category.ID {
		t.Error("expected item to reference the created category")
	}
	if output.Item.LocationID == nil || *output.Item.LocationID != output.Location.ID {
		t.Error("expected item to reference the created location")
	}
	if !output.Category.DisplayInRow {
		t.Error("expected new category to display in row by default")
	}
	if output.Location.Color != entity.ColorWhite {
		t.Errorf("expected new location to default to white, got %v", output.Location.Color)
	}
}

func TestCreateItem_ReusesExistingCategoryByName(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	existing := entity.NewCategory("Tools")
	categoryRepo.Create(context.Background(), existing)

	uc := NewCreateItemUseCase(newFakeItemRepo(), categoryRepo, newFakeLocationRepo())

	output, err := uc.Execute(context.Background(), CreateItemInput{
		Name:         "Hammer",
		CategoryName: strPtr("Tools"),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output.Category.ID != existing.ID {
		t.Error("expected existing category to be reused")
	}
	if len(categoryRepo.categories) != 1 {
		t.Errorf("expected 1 category, got %d", len(categoryRepo.categories))
	}
}
