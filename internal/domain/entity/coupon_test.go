package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoupon_DiscountFor(t *testing.T) {
	tests := []struct {
		name      string
		coupon    Coupon
		cartTotal float64
		want      float64
	}{
		{
			name: "percentage discount",
			coupon: Coupon{
				DiscountType:  DiscountTypePercentage,
				DiscountValue: 10,
			},
			cartTotal: 2000,
			want:      200,
		},
		{
			name: "percentage capped at max discount",
			coupon: Coupon{
				DiscountType:      DiscountTypePercentage,
				DiscountValue:     20,
				MaxDiscountAmount: 300,
			},
			cartTotal: 5000,
			want:      300,
		},
		{
			name: "percentage below cap is untouched",
			coupon: Coupon{
				DiscountType:      DiscountTypePercentage,
				DiscountValue:     10,
				MaxDiscountAmount: 500,
			},
			cartTotal: 1000,
			want:      100,
		},
		{
			name: "fixed discount",
			coupon: Coupon{
				DiscountType:  DiscountTypeFixed,
				DiscountValue: 150,
			},
			cartTotal: 2000,
			want:      150,
		},
		{
			name: "fixed discount never exceeds cart total",
			coupon: Coupon{
				DiscountType:  DiscountTypeFixed,
				DiscountValue: 500,
			},
			cartTotal: 350,
			want:      350,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.coupon.DiscountFor(tt.cartTotal), 1e-9)
		})
	}
}
