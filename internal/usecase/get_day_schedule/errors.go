package get_day_schedule

import "errors"

var (
	// ErrInvalidInput is returned for malformed request data
	ErrInvalidInput = errors.New("get_day_schedule: invalid input data")

	// ErrInternal is returned for internal use case failures
	ErrInternal = errors.New("get_day_schedule: internal error")
)
