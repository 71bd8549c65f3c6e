package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Vehicle errors
	ErrVehicleNotFound = errors.New("vehicle not found")

	// Quote errors
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrMissingRate      = errors.New("missing rate for rental type")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingConflict = errors.New("booking conflict")

	// Extension errors
	ErrExtensionNotAllowed    = errors.New("extension not allowed")
	ErrExtensionUnavailable   = errors.New("extension dates unavailable")
	ErrExtensionOutOfRange    = errors.New("extension date out of range")
	ErrAvailabilityCheckFault = errors.New("availability check failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
