package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVoucher_IsValid(t *testing.T) {
	now := time.Date(2025, 6, 2, 15, 30, 0, 0, time.UTC)
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name    string
		voucher Voucher
		want    bool
	}{
		{"expires in the future", Voucher{ExpiryDate: date(2025, 6, 10)}, true},
		{"expires today, still valid all day", Voucher{ExpiryDate: date(2025, 6, 2)}, true},
		{"expired yesterday", Voucher{ExpiryDate: date(2025, 6, 1)}, false},
		{"already redeemed", Voucher{ExpiryDate: date(2025, 6, 10), IsRedeemed: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.voucher.IsValid(now))
		})
	}
}

func TestVoucher_Apply(t *testing.T) {
	tests := []struct {
		name     string
		discount float64
		price    float64
		want     float64
	}{
		{"ten percent", 10, 50.00, 45.00},
		{"rounds to two decimals", 15, 33.33, 28.33},
		{"zero discount", 0, 42.50, 42.50},
		{"full discount", 100, 42.50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Voucher{DiscountPercentage: tt.discount}
			assert.InDelta(t, tt.want, v.Apply(tt.price), 0.001)
		})
	}
}
