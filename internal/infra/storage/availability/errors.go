package availability

import "errors"

var (
	// ErrRuleNotFound is returned when the availability rule does not exist
	ErrRuleNotFound = errors.New("availability.repository: rule not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
