package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase serves order history and the administrative status update.
type OrderUsecase interface {
	// GetOrder retrieves one of the user's orders with items.
	// Fails with ErrOrderOwnershipViolation when the order belongs to someone else.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)

	// ListOrders retrieves the user's orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// PaymentQR renders a UPI deep-link QR code PNG for the order total.
	PaymentQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error)

	// UpdateStatus moves an order along pending -> processing -> shipped ->
	// delivered (cancelled branch before shipment). Administrative only.
	// A successful change enqueues a shipping-update email best-effort.
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
}
