// Package error defines domain-specific errors for the rInventory backend.
package error

import "errors"

// Location domain errors.
var (
	// ErrLocationNotFound is returned when a location is not found in the local store.
	ErrLocationNotFound = errors.New("location not found")

	// ErrLocationNameTooLong is returned when the location name exceeds the maximum length.
	ErrLocationNameTooLong = errors.New("location name too long")

	// ErrLocationNameEmpty is returned when an empty location name is supplied.
	ErrLocationNameEmpty = errors.New("location name must not be empty")

	// ErrLocationOrderEmpty is returned when a reorder request carries no
	// location ids.
	ErrLocationOrderEmpty = errors.New("location order must not be empty")
)

// LocationErrorCode defines error codes for location errors.
// Format: LOC-XXYYYY where XX is category and YYYY is specific error.
type LocationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeLocationNameTooLong LocationErrorCode = "LOC-010001"
	ErrCodeLocationNameEmpty   LocationErrorCode = "LOC-010002"
	ErrCodeLocationOrderEmpty  LocationErrorCode = "LOC-010003"

	// Lookup errors (02XXXX)
	ErrCodeLocationNotFound LocationErrorCode = "LOC-020001"
)

// LocationError represents a location error with code and message.
type LocationError struct {
	Code    LocationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LocationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LocationError) Unwrap() error {
	return e.Err
}

// NewLocationError creates a new LocationError with the given code and message.
func NewLocationError(code LocationErrorCode, message string, err error) *LocationError {
	return &LocationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
