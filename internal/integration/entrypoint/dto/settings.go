// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// UpdateSettingsRequest represents a partial settings update. Absent fields
// are left unchanged.
type UpdateSettingsRequest struct {
	AutoSyncEnabled     *bool  `json:"auto_sync_enabled,omitempty"`
	SyncIntervalSeconds *int64 `json:"sync_interval_seconds,omitempty" binding:"omitempty,gte=1"`
}

// DeviceInfo identifies the enrolled device. The device token itself is
// never exposed through the settings surface.
type DeviceInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SettingsResponse represents the persisted settings.
type SettingsResponse struct {
	AutoSyncEnabled     bool        `json:"auto_sync_enabled"`
	SyncIntervalSeconds int64       `json:"sync_interval_seconds"`
	LastSyncAt          *time.Time  `json:"last_sync_at,omitempty"`
	Enrolled            bool        `json:"enrolled"`
	Device              *DeviceInfo `json:"device,omitempty"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// ToSettingsResponse converts a Settings entity to a SettingsResponse DTO.
func ToSettingsResponse(settings *entity.Settings) SettingsResponse {
	response := SettingsResponse{
		AutoSyncEnabled:     settings.AutoSyncEnabled,
		SyncIntervalSeconds: int64(settings.EffectiveInterval().Seconds()),
		LastSyncAt:          settings.LastSyncAt,
		Enrolled:            settings.Enrolled(),
		UpdatedAt:           settings.UpdatedAt,
	}
	if settings.Enrolled() {
		response.Device = &DeviceInfo{
			ID:   settings.DeviceID,
			Name: settings.DeviceName,
		}
	}
	return response
}
