// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// DefaultSyncInterval is the automatic sync tick interval applied when no
// override is persisted.
const DefaultSyncInterval = 30 * time.Second

// Settings holds the user-changeable application state that used to live in
// a process-wide defaults object. It is persisted as a single row and
// injected explicitly wherever needed. The device enrollment fields are
// filled in once the device completes enrollment against the container.
type Settings struct {
	AutoSyncEnabled bool
	SyncInterval    time.Duration
	LastSyncAt      *time.Time
	DeviceID        string
	DeviceName      string
	DeviceToken     string
	UpdatedAt       time.Time
}

// DefaultSettings returns the settings applied on first launch.
func DefaultSettings() *Settings {
	return &Settings{
		AutoSyncEnabled: true,
		SyncInterval:    DefaultSyncInterval,
		UpdatedAt:       time.Now().UTC(),
	}
}

// EffectiveInterval returns the persisted sync interval, falling back to the
// default when the stored value is unusable.
func (s *Settings) EffectiveInterval() time.Duration {
	if s.SyncInterval <= 0 {
		return DefaultSyncInterval
	}
	return s.SyncInterval
}

// Enrolled reports whether the device has completed enrollment and holds a
// device token.
func (s *Settings) Enrolled() bool {
	return s.DeviceToken != ""
}
