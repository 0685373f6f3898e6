package booking

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrBookingConflict is returned when the insert violates the
	// no-overlap constraint: another confirmed booking occupies the range
	ErrBookingConflict = errors.New("booking.repository: time range conflicts with another booking")

	// ErrEndBeforeStart is returned when the insert violates the
	// end-after-start check constraint
	ErrEndBeforeStart = errors.New("booking.repository: end time must be after start time")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
