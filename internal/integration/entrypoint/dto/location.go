// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// CreateLocationRequest represents the request body for location creation.
// The color is "#RRGGBB" or "#RRGGBBAA"; white is applied when omitted.
type CreateLocationRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=50"`
	Color        *string `json:"color,omitempty"`
	DisplayInRow *bool   `json:"display_in_row,omitempty"`
}

// UpdateLocationRequest represents the request body for location update.
type UpdateLocationRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Color        *string `json:"color,omitempty"`
	DisplayInRow *bool   `json:"display_in_row,omitempty"`
}

// LocationResponse represents a single location in API responses.
type LocationResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Color        string    `json:"color"`
	SortOrder    int       `json:"sort_order"`
	DisplayInRow bool      `json:"display_in_row"`
	ItemCount    int64     `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LocationListResponse represents the response for listing locations.
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// ToLocationResponse converts a domain Location entity to a
// LocationResponse DTO.
func ToLocationResponse(loc *entity.Location, itemCount int64) LocationResponse {
	return LocationResponse{
		ID:           loc.ID.String(),
		Name:         loc.Name,
		Color:        FormatHexColor(loc.Color),
		SortOrder:    loc.SortOrder,
		DisplayInRow: loc.DisplayInRow,
		ItemCount:    itemCount,
		CreatedAt:    loc.CreatedAt,
		UpdatedAt:    loc.UpdatedAt,
	}
}

// ToLocationListResponse converts counted locations to a
// LocationListResponse.
func ToLocationListResponse(locations []*entity.LocationWithCount) LocationListResponse {
	out := make([]LocationResponse, len(locations))
	for i, l := range locations {
		out[i] = ToLocationResponse(l.Location, l.ItemCount)
	}
	return LocationListResponse{Locations: out}
}
