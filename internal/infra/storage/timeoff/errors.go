package timeoff

import "errors"

var (
	// ErrRequestNotFound is returned when no time-off request matches the ID
	ErrRequestNotFound = errors.New("timeoff.repository: time-off request not found")

	// ErrBuildQuery is returned when SQL generation fails
	ErrBuildQuery = errors.New("timeoff.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails
	ErrExecQuery = errors.New("timeoff.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("timeoff.repository: failed to scan row")
)
