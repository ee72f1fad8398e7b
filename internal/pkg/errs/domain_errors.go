package errs

import "errors"

// Sentinel errors shared by the cart use cases and the HTTP layer.
var (
	// Cart errors
	ErrEmptyCart   = errors.New("cart is empty")
	ErrCartChanged = errors.New("cart changed during submission")

	// Availability errors
	ErrAvailability = errors.New("insufficient availability")

	// Submission errors
	ErrSubmissionInProgress = errors.New("submission in progress")

	// Backend errors
	ErrNetwork           = errors.New("backend unreachable")
	ErrBackendValidation = errors.New("backend rejected request")

	// Storage errors
	ErrStorageOperationFailed = errors.New("storage operation failed")
)
