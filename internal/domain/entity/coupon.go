package entity

import (
	"time"

	"github.com/google/uuid"
)

// DiscountType selects how a coupon's value is applied.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Coupon is a discount code with validity window, usage limits and an
// optional minimum purchase requirement.
type Coupon struct {
	ID                uuid.UUID    `json:"id"`
	Code              string       `json:"code"`
	DiscountType      DiscountType `json:"discount_type"`
	DiscountValue     float64      `json:"discount_value"`
	MaxDiscountAmount float64      `json:"max_discount_amount,omitempty"`
	MinPurchaseAmount float64      `json:"min_purchase_amount,omitempty"`
	UsageLimit        int          `json:"usage_limit,omitempty"`
	UsedCount         int          `json:"used_count"`
	ValidFrom         time.Time    `json:"valid_from"`
	ValidUntil        time.Time    `json:"valid_until"`
	IsActive          bool         `json:"is_active"`
	CreatedAt         time.Time    `json:"created_at"`
}

// DiscountFor computes the discount this coupon grants on the given cart
// total. Percentage discounts are capped at MaxDiscountAmount when set, and
// no discount ever exceeds the cart total.
func (c *Coupon) DiscountFor(cartTotal float64) float64 {
	var discount float64
	if c.DiscountType == DiscountTypePercentage {
		discount = cartTotal * c.DiscountValue / 100
		if c.MaxDiscountAmount > 0 && discount > c.MaxDiscountAmount {
			discount = c.MaxDiscountAmount
		}
	} else {
		discount = c.DiscountValue
	}

	if discount > cartTotal {
		discount = cartTotal
	}

	return discount
}

// CouponUsage records one redemption of a coupon by a user on an order.
type CouponUsage struct {
	ID             uuid.UUID `json:"id"`
	CouponID       uuid.UUID `json:"coupon_id"`
	UserID         uuid.UUID `json:"user_id"`
	OrderID        uuid.UUID `json:"order_id"`
	DiscountAmount float64   `json:"discount_amount"`
	UsedAt         time.Time `json:"used_at"`
}
