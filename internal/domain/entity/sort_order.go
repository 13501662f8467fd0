// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/google/uuid"

// SortOrderUpdate assigns a new sort order to a single entity. Reorder
// operations apply a batch of these in one step.
type SortOrderUpdate struct {
	ID        uuid.UUID
	SortOrder int
}
