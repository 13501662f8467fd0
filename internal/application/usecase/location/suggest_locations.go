// Package location contains location-related use cases.
package location

import (
	"context"
	"fmt"
	"strings"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
)

// SuggestLocationsInput represents the input for location name suggestions.
// An empty prefix matches every location.
type SuggestLocationsInput struct {
	Prefix string
}

// SuggestLocationsOutput carries the matching names in sort order. Names
// appearing on several locations are listed once.
type SuggestLocationsOutput struct {
	Names []string
}

// SuggestLocationsUseCase handles autocomplete suggestions for location
// names.
type SuggestLocationsUseCase struct {
	locationRepo adapter.LocationRepository
}

// NewSuggestLocationsUseCase creates a new SuggestLocationsUseCase instance.
func NewSuggestLocationsUseCase(locationRepo adapter.LocationRepository) *SuggestLocationsUseCase {
	return &SuggestLocationsUseCase{
		locationRepo: locationRepo,
	}
}

// Execute performs the suggestion lookup. Matching is a case-insensitive
// prefix match.
func (uc *SuggestLocationsUseCase) Execute(ctx context.Context, input SuggestLocationsInput) (*SuggestLocationsOutput, error) {
	locations, err := uc.locationRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	prefix := strings.ToLower(input.Prefix)
	seen := make(map[string]struct{}, len(locations))
	names := make([]string, 0, len(locations))

	for _, location := range locations {
		if prefix != "" && !strings.HasPrefix(strings.ToLower(location.Name), prefix) {
			continue
		}
		if _, ok := seen[location.Name]; ok {
			continue
		}
		seen[location.Name] = struct{}{}
		names = append(names, location.Name)
	}

	return &SuggestLocationsOutput{
		Names: names,
	}, nil
}
