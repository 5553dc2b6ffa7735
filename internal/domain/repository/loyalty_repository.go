package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrLoyaltyAccountNotFound is returned when a user has no loyalty account yet.
var ErrLoyaltyAccountNotFound = errors.New("loyalty account not found")

// LoyaltyRepository defines the interface for loyalty point persistence.
type LoyaltyRepository interface {
	// FindAccountByUser retrieves the user's loyalty account.
	// Returns ErrLoyaltyAccountNotFound when none exists.
	FindAccountByUser(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyAccount, error)

	// CreateAccount persists a fresh account and fills in the server-assigned
	// id and timestamps.
	CreateAccount(ctx context.Context, account *entity.LoyaltyAccount) error

	// AddPoints atomically adds earned points to both the redeemable and
	// lifetime balances.
	AddPoints(ctx context.Context, userID uuid.UUID, points int) error

	// UpdateTier sets the account's tier.
	UpdateTier(ctx context.Context, userID uuid.UUID, tier entity.LoyaltyTier) error
}
