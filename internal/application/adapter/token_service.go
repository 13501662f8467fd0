// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// DeviceTokenClaims represents the claims contained in a device token.
type DeviceTokenClaims struct {
	DeviceID   string
	DeviceName string
	ExpiresAt  time.Time
}

// DeviceTokenService defines the interface for device token operations.
// A device token proves that a device completed enrollment and is allowed
// to drive sync against the shared container.
type DeviceTokenService interface {
	// GenerateDeviceToken issues a signed token for an enrolled device.
	GenerateDeviceToken(ctx context.Context, deviceID, deviceName string) (string, error)

	// ValidateDeviceToken validates a device token and returns its claims.
	ValidateDeviceToken(ctx context.Context, token string) (*DeviceTokenClaims, error)
}
