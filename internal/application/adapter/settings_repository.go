// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// SettingsRepository defines the interface for the persisted settings row.
// The store holds at most one row; Get returns defaults when it is absent.
type SettingsRepository interface {
	// Get retrieves the current settings, falling back to defaults when no
	// row has been saved yet.
	Get(ctx context.Context) (*entity.Settings, error)

	// Save upserts the settings row.
	Save(ctx context.Context, settings *entity.Settings) error
}
