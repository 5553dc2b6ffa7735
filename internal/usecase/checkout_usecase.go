package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput is the caller's checkout selection. Email identifies the
// confirmation recipient; the delivery layer fills it from the caller's
// token claims.
type CheckoutInput struct {
	AddressID     uuid.UUID
	PaymentMethod entity.PaymentMethod
	CouponCode    string
	Email         string
}

// PlacedOrder summarizes a successful checkout.
type PlacedOrder struct {
	OrderID     uuid.UUID `json:"order_id"`
	TotalAmount float64   `json:"total_amount"`
	Subtotal    float64   `json:"subtotal"`
	Shipping    float64   `json:"shipping"`
	Discount    float64   `json:"discount"`
}

// CheckoutUsecase materializes exactly one order (and its items) from the
// current cart, then clears the cart. The write sequence is best-effort: the
// backing store exposes no cross-table transaction for this path, so each
// step has an explicit failure policy rather than a rollback.
type CheckoutUsecase interface {
	// PlaceOrder runs the checkout sequence for the user's cart. An order
	// insert failure is fatal and leaves the cart untouched; an item insert
	// failure yields a PartialOrderError carrying the created order id; a
	// cart-clear or email-enqueue failure after that is logged only.
	PlaceOrder(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*PlacedOrder, error)

	// RepairOrder replays the item inserts for a partially materialized
	// order, deduplicating on (orderID, productID, size), then finishes the
	// cart-clear and confirmation-email steps. Safe to retry.
	RepairOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*entity.Order, error)
}
