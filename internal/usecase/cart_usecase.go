// Package usecase defines the application-level interfaces of the storefront.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase maintains a consistent view of "what is in the cart" across two
// storage backends: the database for authenticated users and the guest-cart
// store for anonymous sessions. The owner variant is chosen per call by the
// delivery layer; no cart operation switches it.
type CartUsecase interface {
	// LoadCart materializes the owner's cart. A persistence failure degrades
	// to an empty cart with a logged warning: an empty cart is always a safe
	// fallback state and is never surfaced as a user-facing error.
	LoadCart(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error)

	// AddLine adds quantity of (productID, size) to the owner's cart. The
	// pair is unique per owner: adding an already-present pair increments the
	// existing line instead of duplicating it. Fails with ErrProductNotFound
	// when the product does not resolve.
	AddLine(ctx context.Context, owner entity.CartOwner, productID int64, size string, quantity int) (*entity.Cart, error)

	// UpdateQuantity sets a line's quantity. Quantities below 1 are a silent
	// no-op, not an error.
	UpdateQuantity(ctx context.Context, owner entity.CartOwner, lineID string, quantity int) (*entity.Cart, error)

	// RemoveLine removes a line by id, scoped to the owner. Removing a
	// missing id is a no-op.
	RemoveLine(ctx context.Context, owner entity.CartOwner, lineID string) (*entity.Cart, error)

	// ClearCart removes every line for the owner. Idempotent.
	ClearCart(ctx context.Context, owner entity.CartOwner) error

	// MergeGuestCart folds a guest session's cart into the authenticated
	// user's cart on sign-in, summing quantities for matching (product, size)
	// pairs, then clears the guest cart.
	MergeGuestCart(ctx context.Context, sessionID string, userID uuid.UUID) (*entity.Cart, error)
}
