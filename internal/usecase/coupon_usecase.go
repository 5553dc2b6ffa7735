package usecase

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// CouponValidation is the outcome of checking a code against a cart total.
type CouponValidation struct {
	Coupon         *entity.Coupon `json:"coupon"`
	DiscountAmount float64        `json:"discount_amount"`
}

// CouponUsecase validates and redeems discount codes.
type CouponUsecase interface {
	// Validate checks code against activity window, usage limits, minimum
	// purchase, and per-user prior redemption, returning the discount the
	// code would grant on cartTotal.
	Validate(ctx context.Context, code string, cartTotal float64, userID uuid.UUID) (*CouponValidation, error)

	// Redeem records a usage row and bumps the coupon's used count in a
	// single transaction. Called after the order row exists.
	Redeem(ctx context.Context, couponID, userID, orderID uuid.UUID, discountAmount float64) error
}
