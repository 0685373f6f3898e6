package create_booking

import "errors"

var (
	// ErrInvalidDate is returned for booking dates in the past
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture is returned when the date exceeds the tenant's
	// max advance booking window
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrDayClosed is returned when no availability rule covers the date
	ErrDayClosed = errors.New("create_booking: no availability on this date")

	// ErrInvalidTimeSlot is returned when the requested start does not match
	// any slot the schedule offers for that date
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotConflict is returned when the slot is already taken by a
	// confirmed booking
	ErrSlotConflict = errors.New("create_booking: slot is already booked")

	// ErrTooLateToBook is returned when booking the slot would violate the
	// minimum advance notice
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned for internal use case failures
	ErrInternal = errors.New("create_booking: internal error")
)
