// Package item contains item-related use cases.
package item

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

func TestDeleteItem_RemovesItem(t *testing.T) {
	itemRepo := newFakeItemRepo()
	existing := entity.NewItem("Hammer", nil)
	itemRepo.Create(context.Background(), existing)

	uc := NewDeleteItemUseCase(itemRepo, newFakeCategoryRepo(), newFakeLocationRepo())

	output, err := uc.Execute(context.Background(), DeleteItemInput{ID: existing.ID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !output.Success {
		t.Error("expected success")
	}
	if _, err := itemRepo.FindByID(context.Background(), existing.ID); !errors.Is(err, domainerror.ErrItemNotFound) {
		t.Error("expected item to be gone")
	}
}

func TestDeleteItem_NotFound(t *testing.T) {
	uc := NewDeleteItemUseCase(newFakeItemRepo(), newFakeCategoryRepo(), newFakeLocationRepo())

	_, err := uc.Execute(context.Background(), DeleteItemInput{ID: uuid.New()})
	if !errors.Is(err, domainerror.ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDeleteItem_CleansUpEmptyCategoryAndLocation(t *testing.T) {
	itemRepo := newFakeItemRepo()
	categoryRepo := newFakeCategoryRepo()
	locationRepo := newFakeLocationRepo()

	category := entity.NewCategory("Tools")
	categoryRepo.Create(context.Background(), category)
	location := entity.NewLocation("Garage")
	locationRepo.Create(context.Background(), location)

	existing := entity.NewItem("Hammer", nil)
	existing.CategoryID = &category.ID
	existing.LocationID = &location.ID
	itemRepo.Create(context.Background(), existing)

	uc := NewDeleteItemUseCase(itemRepo, categoryRepo, locationRepo)

	output, err := uc.Execute(context.Background(), DeleteItemInput{ID: existing.ID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !output.RemovedCategory {
		t.Error("expected empty category to be removed")
	}
	if !output.RemovedLocation {
		t.Error("expected empty location to be removed")
	}
	if len(categoryRepo.categories) != 0 {
		t.Errorf("expected 0 categories, got %d", len(categoryRepo.categories))
	}
	if len(locationRepo.locations) != 0 {
		t.Errorf("expected 0 locations, got %d", len(locationRepo.locations))
	}
}

func TestDeleteItem_KeepsSharedCategory(t *testing.T) {
	itemRepo := newFakeItemRepo()
	categoryRepo := newFakeCategoryRepo()

	category := entity.NewCategory("Tools")
	categoryRepo.Create(context.Background(), category)

	first := entity.NewItem("Hammer", nil)
	first.CategoryID = &category.ID
	itemRepo.Create(context.Background(), first)

	second := entity.NewItem("Wrench", nil)
	second.CategoryID = &category.ID
	itemRepo.Create(context.Background(), second)

	uc := NewDeleteItemUseCase(itemRepo, categoryRepo, newFakeLocationRepo())

	output, err := uc.Execute(context.Background(), DeleteItemInput{ID: first.ID})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output.RemovedCategory {
		t.Error("expected category to survive while still referenced")
	}
	if len(categoryRepo.categories) != 1 {
		t.Errorf("expected 1 category, got %d", len(categoryRepo.categories))
	}
}
