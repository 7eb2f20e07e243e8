package domain

import (
	"math"
	"time"
)

// Voucher is a single-use discount code.
type Voucher struct {
	Code               string
	DiscountPercentage float64
	ExpiryDate         time.Time
	IsRedeemed         bool
	UsedByUserID       *int64
	CreatedAt          time.Time
}

// IsValid reports whether the voucher can still be redeemed at time now.
// Expiry is date-granular: a voucher expiring today is valid all day.
func (v *Voucher) IsValid(now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !v.IsRedeemed && !v.ExpiryDate.Before(today)
}

// Apply returns the price after the voucher discount, rounded to 2 decimal
// places.
func (v *Voucher) Apply(price float64) float64 {
	discounted := price * (1 - v.DiscountPercentage/100)
	return math.Round(discounted*100) / 100
}
