package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist for the tenant
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotCancel is returned when the booking is already cancelled
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("service: internal error")
)
