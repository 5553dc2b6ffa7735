package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order lookup finds no row.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order persistence. Order and item
// writes are deliberately separate calls: checkout sequences them best-effort
// and reports a partial order rather than wrapping them in one transaction.
type OrderRepository interface {
	// CreateOrder persists a new order row and fills in the server-assigned
	// id and timestamps. Items carried on the entity are NOT written.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// CreateOrderItems persists the given items in one batched insert.
	CreateOrderItems(ctx context.Context, items []*entity.OrderItem) error

	// FindItemsByOrder retrieves the items already persisted for an order.
	// Used to deduplicate (orderID, productID, size) on item-insert retries.
	FindItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)

	// FindOrderByID retrieves an order with its items joined in.
	// Returns ErrOrderNotFound if the id does not resolve.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByUser retrieves the user's orders, newest first, items joined.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)

	// UpdateOrderStatus sets the fulfillment status of an order.
	// Returns ErrOrderNotFound when no row matches.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// UpdatePaymentStatus sets the settlement state of an order's payment.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error
}
