// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ReorderRequest represents an ordered list of entity IDs; positions in the
// list become the new sort orders.
type ReorderRequest struct {
	OrderedIDs []string `json:"ordered_ids" binding:"required,min=1"`
}

// SuggestionsResponse represents name autocomplete suggestions.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// FormatHexColor renders a color as "#RRGGBB", or "#RRGGBBAA" when the
// alpha channel is not fully opaque.
func FormatHexColor(c entity.Color) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" (case-insensitive, leading
// '#' optional) into a color. A missing alpha channel means fully opaque.
func ParseHexColor(s string) (entity.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return entity.Color{}, fmt.Errorf("invalid color %q: expected #RRGGBB or #RRGGBBAA", s)
	}

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return entity.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	if len(hex) == 6 {
		return entity.Color{
			R: uint8(value >> 16),
			G: uint8(value >> 8),
			B: uint8(value),
			A: 255,
		}, nil
	}
	return entity.Color{
		R: uint8(value >> 24),
		G: uint8(value >> 16),
		B: uint8(value >> 8),
		A: uint8(value),
	}, nil
}
