// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/Somebud0180/rInventory-sub001/internal/domain/entity"
)

// settingsRowID is the fixed primary key of the single settings row.
const settingsRowID = 1

// SettingsModel represents the settings table in the database. The table
// holds at most one row; the sync interval is stored in whole seconds.
type SettingsModel struct {
	ID                  int        `gorm:"primaryKey"`
	AutoSyncEnabled     bool       `gorm:"not null;default:true"`
	SyncIntervalSeconds int64      `gorm:"not null;default:30"`
	LastSyncAt          *time.Time `gorm:""`
	DeviceID            string     `gorm:"type:varchar(64);not null;default:''"`
	DeviceName          string     `gorm:"type:varchar(100);not null;default:''"`
	DeviceToken         string     `gorm:"type:text;not null;default:''"`
	UpdatedAt           time.Time  `gorm:"not null"`
}

// TableName returns the table name for the SettingsModel.
func (SettingsModel) TableName() string {
	return "settings"
}

// ToEntity converts a SettingsModel to a domain Settings entity.
func (m *SettingsModel) ToEntity() *entity.Settings {
	return &entity.Settings{
		AutoSyncEnabled: m.AutoSyncEnabled,
		SyncInterval:    time.Duration(m.SyncIntervalSeconds) * time.Second,
		LastSyncAt:      m.LastSyncAt,
		DeviceID:        m.DeviceID,
		DeviceName:      m.DeviceName,
		DeviceToken:     m.DeviceToken,
		UpdatedAt:       m.UpdatedAt,
	}
}

// SettingsFromEntity creates a SettingsModel from a domain Settings entity.
func SettingsFromEntity(settings *entity.Settings) *SettingsModel {
	return &SettingsModel{
		ID:                  settingsRowID,
		AutoSyncEnabled:     settings.AutoSyncEnabled,
		SyncIntervalSeconds: int64(settings.SyncInterval / time.Second),
		LastSyncAt:          settings.LastSyncAt,
		DeviceID:            settings.DeviceID,
		DeviceName:          settings.DeviceName,
		DeviceToken:         settings.DeviceToken,
		UpdatedAt:           settings.UpdatedAt,
	}
}
