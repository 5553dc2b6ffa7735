package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrCartLineNotFound is returned when a cart line lookup finds no row.
var ErrCartLineNotFound = errors.New("cart line not found")

// CartRepository defines the interface for the authenticated (server-side)
// cart. Guest carts never reach this layer; they live in the guest-cart store.
type CartRepository interface {
	// FindLinesByUser retrieves all cart lines owned by the user, without
	// product snapshots: the caller joins products in via a batched read.
	FindLinesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error)

	// FindLineByProductAndSize retrieves the user's line for (productID, size).
	// Returns ErrCartLineNotFound when the pair is not in the cart.
	FindLineByProductAndSize(ctx context.Context, userID uuid.UUID, productID int64, size string) (*entity.CartLine, error)

	// CreateLine persists a new cart line for the user and fills in the
	// server-assigned id and timestamps.
	CreateLine(ctx context.Context, userID uuid.UUID, line *entity.CartLine) error

	// UpdateLineQuantity sets the quantity of the user's line. The update is
	// owner-scoped; a lineID belonging to another user matches no row.
	// Matching no row is not an error.
	UpdateLineQuantity(ctx context.Context, userID uuid.UUID, lineID string, quantity int) error

	// DeleteLine removes the user's line by id. Owner-scoped like
	// UpdateLineQuantity; deleting a missing line is a no-op.
	DeleteLine(ctx context.Context, userID uuid.UUID, lineID string) error

	// DeleteLinesByUser removes every cart line owned by the user.
	// Idempotent: clearing an empty cart is a no-op.
	DeleteLinesByUser(ctx context.Context, userID uuid.UUID) error
}
