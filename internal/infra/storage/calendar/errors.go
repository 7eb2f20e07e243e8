package calendar

import "errors"

var (
	// ErrBuildQuery is returned when SQL generation fails
	ErrBuildQuery = errors.New("calendar.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails
	ErrExecQuery = errors.New("calendar.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("calendar.repository: failed to scan row")
)
