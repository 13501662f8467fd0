// Package settings contains use cases for the persisted application
// settings.
package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/Somebud0180/rInventory-sub001/internal/application/adapter"
	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
	domainerror "github.com/Somebud0180/rInventory-sub001/internal/domain/error"
)

// MinSyncInterval is the lowest automatic sync interval a settings update
// may set. Anything shorter would hammer the remote store for no benefit.
const MinSyncInterval = 5 * time.Second

// UpdateSettingsInput represents a partial settings update. Nil fields are
// left at their stored values.
type UpdateSettingsInput struct {
	AutoSyncEnabled *bool
	SyncInterval    *time.Duration
}

// UpdateSettingsOutput represents the settings after the update.
type UpdateSettingsOutput struct {
	Settings *entity.Settings
}

// UpdateSettingsUseCase applies a partial update to the settings row.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{settingsRepo: settingsRepo}
}

// Execute performs the settings update. The device enrollment fields are
// never touched here; enrollment owns them.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input.SyncInterval != nil && *input.SyncInterval < MinSyncInterval {
		return nil, domainerror.NewSyncError(
			domainerror.ErrCodeInvalidInterval,
			fmt.Sprintf("sync interval must be at least %s", MinSyncInterval),
			domainerror.ErrInvalidSyncInterval,
		)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if input.AutoSyncEnabled != nil {
		settings.AutoSyncEnabled = *input.AutoSyncEnabled
	}
	if input.SyncInterval != nil {
		settings.SyncInterval = *input.SyncInterval
	}
	settings.UpdatedAt = time.Now().UTC()

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return &UpdateSettingsOutput{Settings: settings}, nil
}
