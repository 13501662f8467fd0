// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/summary"
)

// CategorySummaryResponse represents one category row in the summary.
type CategorySummaryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ItemCount    int64  `json:"item_count"`
	DisplayInRow bool   `json:"display_in_row"`
}

// LocationSummaryResponse represents one location row in the summary.
type LocationSummaryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Color        string `json:"color"`
	ItemCount    int64  `json:"item_count"`
	DisplayInRow bool   `json:"display_in_row"`
}

// SummaryResponse represents the catalog overview counts.
type SummaryResponse struct {
	TotalItems    int64                     `json:"total_items"`
	TotalQuantity int64                     `json:"total_quantity"`
	Uncategorized int64                     `json:"uncategorized"`
	Unlocated     int64                     `json:"unlocated"`
	Categories    []CategorySummaryResponse `json:"categories"`
	Locations     []LocationSummaryResponse `json:"locations"`
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *summary.GetSummaryOutput) SummaryResponse {
	categories := make([]CategorySummaryResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = CategorySummaryResponse{
			ID:           c.ID.String(),
			Name:         c.Name,
			ItemCount:    c.ItemCount,
			DisplayInRow: c.DisplayInRow,
		}
	}
	locations := make([]LocationSummaryResponse, len(output.Locations))
	for i, l := range output.Locations {
		locations[i] = LocationSummaryResponse{
			ID:           l.ID.String(),
			Name:         l.Name,
			Color:        FormatHexColor(l.Color),
			ItemCount:    l.ItemCount,
			DisplayInRow: l.DisplayInRow,
		}
	}
	return SummaryResponse{
		TotalItems:    output.TotalItems,
		TotalQuantity: output.TotalQuantity,
		Uncategorized: output.Uncategorized,
		Unlocated:     output.Unlocated,
		Categories:    categories,
		Locations:     locations,
	}
}
