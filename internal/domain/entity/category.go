// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups items by kind ("Tools", "Books"). Identity is UUID-based;
// two categories with the same name are distinct objects and are only
// deduplicated by name at the autocomplete-suggestion layer.
type Category struct {
	ID           uuid.UUID
	Name         string
	SortOrder    int
	DisplayInRow bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewCategory creates a new Category entity. DisplayInRow defaults to true
// so new categories show up in the summary row immediately.
func NewCategory(name string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:           uuid.New(),
		Name:         name,
		DisplayInRow: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// CategoryWithCount pairs a category with the number of items referencing it.
type CategoryWithCount struct {
	Category  *Category
	ItemCount int64
}
