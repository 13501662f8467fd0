// Package settings contains use cases for the persisted application
// settings.
package settings

import (
	"context"
	"fmt"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// GetSettingsInput represents the input for reading settings.
type GetSettingsInput struct{}

// GetSettingsOutput represents the current settings.
type GetSettingsOutput struct {
	Settings *entity.Settings
}

// GetSettingsUseCase reads the persisted settings row.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{settingsRepo: settingsRepo}
}

// Execute retrieves the settings, falling back to defaults when nothing has
// been saved yet.
func (uc *GetSettingsUseCase) Execute(ctx context.Context, input GetSettingsInput) (*GetSettingsOutput, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &GetSettingsOutput{Settings: settings}, nil
}
