// Package error defines domain-specific errors for the rInventory backend.
package error

import "errors"

// Item domain errors.
var (
	// ErrItemNotFound is returned when an item is not found in the local store.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemNameTooLong is returned when the item name exceeds the maximum length.
	ErrItemNameTooLong = errors.New("item name too long")

	// ErrNegativeQuantity is returned when a negative quantity is supplied.
	ErrNegativeQuantity = errors.New("quantity must not be negative")

	// ErrImageTooLarge is returned when the supplied image exceeds the size cap.
	ErrImageTooLarge = errors.New("image data too large")

	// ErrItemOrderEmpty is returned when a reorder request carries no item ids.
	ErrItemOrderEmpty = errors.New("item order must not be empty")
)

// ItemErrorCode defines error codes for item errors.
// Format: ITM-XXYYYY where XX is category and YYYY is specific error.
type ItemErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeItemNameTooLong  ItemErrorCode = "ITM-010001"
	ErrCodeNegativeQuantity ItemErrorCode = "ITM-010002"
	ErrCodeImageTooLarge    ItemErrorCode = "ITM-010003"
	ErrCodeItemOrderEmpty   ItemErrorCode = "ITM-010004"

	// Lookup errors (02XXXX)
	ErrCodeItemNotFound ItemErrorCode = "ITM-020001"
)

// ItemError represents an item error with code and message.
type ItemError struct {
	Code    ItemErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ItemError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ItemError) Unwrap() error {
	return e.Err
}

// NewItemError creates a new ItemError with the given code and message.
func NewItemError(code ItemErrorCode, message string, err error) *ItemError {
	return &ItemError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
