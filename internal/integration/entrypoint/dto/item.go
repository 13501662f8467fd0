// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/Somebud0180/rInventory-sub001/internal/application/usecase/item"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// CreateItemRequest represents the request body for item creation. Image
// data travels as standard base64. The symbol color only takes effect when
// a symbol name is set.
type CreateItemRequest struct {
	Name         string  `json:"name" binding:"max=100"`
	Quantity     *int64  `json:"quantity,omitempty" binding:"omitempty,gte=0"`
	ImageData    []byte  `json:"image_data,omitempty"`
	Symbol       string  `json:"symbol,omitempty"`
	SymbolColor  *string `json:"symbol_color,omitempty"`
	CategoryName *string `json:"category_name,omitempty" binding:"omitempty,max=50"`
	LocationName *string `json:"location_name,omitempty" binding:"omitempty,max=50"`
}

// UpdateItemRequest represents the request body for item update. Absent
// fields are left unchanged; an empty string in category_name or
// location_name removes the reference, an empty symbol clears the symbol
// and its color, and explicit empty image_data clears the image.
type UpdateItemRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Quantity     *int64  `json:"quantity,omitempty" binding:"omitempty,gte=0"`
	ImageData    *[]byte `json:"image_data,omitempty"`
	Symbol       *string `json:"symbol,omitempty"`
	SymbolColor  *string `json:"symbol_color,omitempty"`
	CategoryName *string `json:"category_name,omitempty" binding:"omitempty,max=50"`
	LocationName *string `json:"location_name,omitempty" binding:"omitempty,max=50"`
}

// ItemResponse represents a single item in API responses.
type ItemResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Quantity    *int64            `json:"quantity,omitempty"`
	ImageData   []byte            `json:"image_data,omitempty"`
	Symbol      string            `json:"symbol,omitempty"`
	SymbolColor string            `json:"symbol_color,omitempty"`
	SortOrder   int               `json:"sort_order"`
	Category    *CategoryResponse `json:"category,omitempty"`
	Location    *LocationResponse `json:"location,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	ModifiedAt  time.Time         `json:"modified_at"`
}

// ItemListResponse represents the response for listing items.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// ToItemResponse converts a domain Item entity to an ItemResponse DTO.
// Category and location may be nil when the item carries no reference.
func ToItemResponse(it *entity.Item, cat *entity.Category, loc *entity.Location) ItemResponse {
	response := ItemResponse{
		ID:         it.ID.String(),
		Name:       it.Name,
		Quantity:   it.Quantity,
		ImageData:  it.ImageData,
		Symbol:     it.SymbolName,
		SortOrder:  it.SortOrder,
		CreatedAt:  it.CreatedAt,
		ModifiedAt: it.ModifiedAt,
	}
	if it.SymbolColor != nil {
		response.SymbolColor = FormatHexColor(*it.SymbolColor)
	}
	if cat != nil {
		converted := ToCategoryResponse(cat, 0)
		response.Category = &converted
	}
	if loc != nil {
		converted := ToLocationResponse(loc, 0)
		response.Location = &converted
	}
	return response
}

// ToItemListResponse converts a ListItemsOutput to an ItemListResponse,
// resolving each item's category and location from the preloaded maps.
func ToItemListResponse(output *item.ListItemsOutput) ItemListResponse {
	items := make([]ItemResponse, len(output.Items))
	for i, it := range output.Items {
		var cat *entity.Category
		var loc *entity.Location
		if it.CategoryID != nil {
			cat = output.Categories[*it.CategoryID]
		}
		if it.LocationID != nil {
			loc = output.Locations[*it.LocationID]
		}
		items[i] = ToItemResponse(it, cat, loc)
	}
	return ItemListResponse{Items: items}
}
