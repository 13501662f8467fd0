// Package error defines domain-specific errors for the rInventory backend.
package error

import "errors"

// Sync engine domain errors.
var (
	// ErrAccountUnavailable is returned when the cloud account is not signed
	// in or the cloud store is unreachable; no network sync is attempted.
	ErrAccountUnavailable = errors.New("cloud account unavailable")

	// ErrSyncDisabled is returned when automatic sync is requested while
	// disabled in settings.
	ErrSyncDisabled = errors.New("sync disabled in settings")

	// ErrRecordSkipped marks a remote record that failed the typed decode
	// and was dropped from the pull batch. It never aborts a pull.
	ErrRecordSkipped = errors.New("remote record skipped")

	// ErrInvalidSyncInterval is returned when a settings update carries an
	// automatic sync interval below the allowed minimum.
	ErrInvalidSyncInterval = errors.New("invalid sync interval")
)

// SyncErrorCode defines error codes for sync errors.
// Format: SYN-XXYYYY where XX is category and YYYY is specific error.
type SyncErrorCode string

const (
	// Availability and validation errors (01XXXX)
	ErrCodeAccountUnavailable SyncErrorCode = "SYN-010001"
	ErrCodeSyncDisabled       SyncErrorCode = "SYN-010002"
	ErrCodeInvalidInterval    SyncErrorCode = "SYN-010003"

	// Transport errors (02XXXX)
	ErrCodePullFailed SyncErrorCode = "SYN-020001"
	ErrCodePushFailed SyncErrorCode = "SYN-020002"
	ErrCodeZoneSetup  SyncErrorCode = "SYN-020003"
)

// SyncError represents a sync failure with code and human-readable message.
// The message is what the error state machine publishes to the UI layer.
type SyncError struct {
	Code    SyncErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SyncError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError with the given code and message.
func NewSyncError(code SyncErrorCode, message string, err error) *SyncError {
	return &SyncError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
