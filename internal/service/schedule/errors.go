package schedule

import "errors"

var (
	// ErrInvalidRule is returned when a submitted availability rule is malformed
	ErrInvalidRule = errors.New("invalid availability rule")

	// ErrInvalidSettings is returned when submitted settings are out of range
	ErrInvalidSettings = errors.New("invalid scheduling settings")

	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned for internal service failures
	ErrInternal = errors.New("service: internal error")
)
