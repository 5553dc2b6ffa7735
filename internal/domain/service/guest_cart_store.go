// Package service defines domain-level service contracts implemented by the
// infrastructure layer.
package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// GuestCartStore is the ephemeral key-value store backing anonymous carts:
// one JSON-serialized line list per session key, read on load and overwritten
// wholesale on every mutation.
type GuestCartStore interface {
	// Load reads the session's line list. A missing key yields an empty list.
	Load(ctx context.Context, sessionID string) ([]*entity.CartLine, error)

	// Save overwrites the session's line list.
	Save(ctx context.Context, sessionID string, lines []*entity.CartLine) error

	// Clear removes the session's line list. Clearing a missing key is a no-op.
	Clear(ctx context.Context, sessionID string) error
}
