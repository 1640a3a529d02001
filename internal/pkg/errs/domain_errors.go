package errs

import "errors"

// Domain-specific sentinel errors shared by the command and query sides
var (
	// Shop errors
	ErrShopNotFound = errors.New("shop not found")

	// Appointment errors
	ErrAppointmentNotFound = errors.New("appointment not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreUnavailable = errors.New("appointment store unavailable")
)
