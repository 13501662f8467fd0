// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=50"`
	DisplayInRow *bool  `json:"display_in_row,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	DisplayInRow *bool   `json:"display_in_row,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SortOrder    int       `json:"sort_order"`
	DisplayInRow bool      `json:"display_in_row"`
	ItemCount    int64     `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a
// CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category, itemCount int64) CategoryResponse {
	return CategoryResponse{
		ID:           cat.ID.String(),
		Name:         cat.Name,
		SortOrder:    cat.SortOrder,
		DisplayInRow: cat.DisplayInRow,
		ItemCount:    itemCount,
		CreatedAt:    cat.CreatedAt,
		UpdatedAt:    cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts counted categories to a
// CategoryListResponse.
func ToCategoryListResponse(categories []*entity.CategoryWithCount) CategoryListResponse {
	out := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		out[i] = ToCategoryResponse(c.Category, c.ItemCount)
	}
	return CategoryListResponse{Categories: out}
}
