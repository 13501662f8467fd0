// Package error defines domain-specific errors for the rInventory backend.
package error

import "errors"

// Cloud record store errors.
var (
	// ErrZoneNotFound is returned when querying a record zone that has not
	// been provisioned in the container.
	ErrZoneNotFound = errors.New("record zone not found")

	// ErrRecordNotFound is returned when a by-id query matches no record.
	ErrRecordNotFound = errors.New("record not found")

	// ErrCloudUnavailable is returned when the cloud store cannot be reached.
	ErrCloudUnavailable = errors.New("cloud store unavailable")
)

// Device enrollment errors.
var (
	// ErrInvalidPassphrase is returned when the container passphrase does
	// not match during device enrollment.
	ErrInvalidPassphrase = errors.New("invalid container passphrase")

	// ErrInvalidDeviceToken is returned when a device token is malformed,
	// has a bad signature, or has expired.
	ErrInvalidDeviceToken = errors.New("invalid device token")

	// ErrEnrollmentDisabled is returned when enrollment is attempted but no
	// passphrase hash is configured.
	ErrEnrollmentDisabled = errors.New("device enrollment not configured")

	// ErrMissingDeviceName is returned when enrollment is attempted without
	// a device name.
	ErrMissingDeviceName = errors.New("device name is required")

	// ErrMissingDeviceToken is returned when a request carries no device
	// token at all.
	ErrMissingDeviceToken = errors.New("device token is required")
)

// DeviceErrorCode defines error codes for device enrollment errors.
// Format: DEV-XXYYYY where XX is category and YYYY is specific error.
type DeviceErrorCode string

const (
	ErrCodeInvalidPassphrase  DeviceErrorCode = "DEV-010001"
	ErrCodeEnrollmentDisabled DeviceErrorCode = "DEV-010002"
	ErrCodeMissingDeviceName  DeviceErrorCode = "DEV-010003"
	ErrCodeRateLimited        DeviceErrorCode = "DEV-010004"
	ErrCodeInvalidDeviceToken DeviceErrorCode = "DEV-020001"
	ErrCodeMissingDeviceToken DeviceErrorCode = "DEV-020002"
)

// DeviceError represents a device enrollment error with code and message.
type DeviceError struct {
	Code    DeviceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DeviceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DeviceError) Unwrap() error {
	return e.Err
}

// NewDeviceError creates a new DeviceError with the given code and message.
func NewDeviceError(code DeviceErrorCode, message string, err error) *DeviceError {
	return &DeviceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
