// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a physical place items are kept ("Garage", "Attic"). Identity
// is UUID-based, mirroring Category.
type Location struct {
	ID           uuid.UUID
	Name         string
	Color        Color
	SortOrder    int
	DisplayInRow bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewLocation creates a new Location entity with the default white color.
func NewLocation(name string) *Location {
	now := time.Now().UTC()

	return &Location{
		ID:           uuid.New(),
		Name:         name,
		Color:        ColorWhite,
		DisplayInRow: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// LocationWithCount pairs a location with the number of items stored there.
type LocationWithCount struct {
	Location  *Location
	ItemCount int64
}
