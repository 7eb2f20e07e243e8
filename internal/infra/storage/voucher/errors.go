package voucher

import "errors"

var (
	// ErrVoucherNotFound is returned when no voucher matches the code
	ErrVoucherNotFound = errors.New("voucher.repository: voucher not found")

	// ErrAlreadyRedeemed is returned when the redeem CAS found the voucher spent
	ErrAlreadyRedeemed = errors.New("voucher.repository: voucher already redeemed")

	// ErrBuildQuery is returned when SQL generation fails
	ErrBuildQuery = errors.New("voucher.repository: failed to build query")

	// ErrExecQuery is returned when SQL execution fails
	ErrExecQuery = errors.New("voucher.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("voucher.repository: failed to scan row")
)
