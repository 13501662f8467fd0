// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultItemQuantity is applied when an item is created without an
// explicit quantity. A nil or zero quantity means "not tracked".
const DefaultItemQuantity int64 = 1

// Item represents a physical item in the rInventory catalog. Identity is a
// client-generated UUID, assigned once at creation and never reassigned.
type Item struct {
	ID          uuid.UUID
	Name        string
	Quantity    *int64 // nil or 0 = quantity not tracked
	ImageData   []byte
	SymbolName  string
	SymbolColor *Color
	SortOrder   int
	CategoryID  *uuid.UUID
	LocationID  *uuid.UUID
	CreatedAt   time.Time
	ModifiedAt  time.Time
}

// NewItem creates a new Item entity with a fresh identity and both
// timestamps set to now.
func NewItem(name string, quantity *int64) *Item {
	now := time.Now().UTC()

	return &Item{
		ID:         uuid.New(),
		Name:       name,
		Quantity:   quantity,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// Touch refreshes the last-modified timestamp. Every field mutation, whether
// from a UI edit or a sync reconciliation, must go through this.
func (i *Item) Touch() {
	i.ModifiedAt = time.Now().UTC()
}

// QuantityTracked reports whether the item carries a tracked quantity.
func (i *Item) QuantityTracked() bool {
	return i.Quantity != nil && *i.Quantity > 0
}

// IsGhost reports whether the item is a degenerate record: empty name, no
// image, no symbol, no category or location, and no tracked quantity. Ghost
// items are targeted by the maintenance cleanup pass.
func (i *Item) IsGhost() bool {
	return i.Name == "" &&
		len(i.ImageData) == 0 &&
		i.SymbolName == "" &&
		i.CategoryID == nil &&
		i.LocationID == nil &&
		!i.QuantityTracked()
}
