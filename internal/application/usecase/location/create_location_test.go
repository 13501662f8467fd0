// Package location contains location-related use cases.
package location

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

func TestCreateLocation_DefaultsToWhite(t *testing.T) {
	repo := newFakeLocationRepo()
	uc := NewCreateLocationUseCase(repo)

	output, err := uc.Execute(context.Background(), CreateLocationInput{Name: "Garage"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	location := output.Location
	if location.Color != entity.ColorWhite {
		t.Errorf("expected white, got %v", location.Color)
	}
	if !location.DisplayInRow {
		t.Error("expected DisplayInRow to default to true")
	}
	if location.SortOrder != 0 {
		t.Errorf("expected sort order 0 for first location, got %d", location.SortOrder)
	}
}

func TestCreateLocation_WithCustomColor(t *testing.T) {
	uc := NewCreateLocationUseCase(newFakeLocationRepo())

	red := entity.Color{R: 255, A: 255}
	output, err := uc.Execute(context.Background(), CreateLocationInput{
		Name:  "Attic",
		Color: &red,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if output.Location.Color != red {
		t.Errorf("expected %v, got %v", red, output.Location.Color)
	}
}

func TestCreateLocation_Validation(t *testing.T) {
	tests := []struct {
		name        string
		input       CreateLocationInput
		expectedErr error
	}{
		{
			name:        "empty name",
			input:       CreateLocationInput{Name: ""},
			expectedErr: domainerror.ErrLocationNameEmpty,
		},
		{
			name:        "name too long",
			input:       CreateLocationInput{Name: strings.Repeat("a", MaxLocationNameLength+1)},
			expectedErr: domainerror.ErrLocationNameTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateLocationUseCase(newFakeLocationRepo())

			_, err := uc.Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}
