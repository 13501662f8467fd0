// Package dto defines data transfer objects for API requests and responses.
package dto

import "time"

// EnrollDeviceRequest represents the request body for device enrollment.
type EnrollDeviceRequest struct {
	Passphrase string `json:"passphrase" binding:"required"`
	DeviceName string `json:"device_name" binding:"required,max=100"`
}

// EnrollDeviceResponse represents a successful enrollment. The token must
// be presented on every authenticated request.
type EnrollDeviceResponse struct {
	DeviceID    string    `json:"device_id"`
	DeviceName  string    `json:"device_name"`
	DeviceToken string    `json:"device_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}
