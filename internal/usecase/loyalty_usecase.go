package usecase

import (
	"context"

	"github.com/google/uuid"

	"storefront/internal/domain/entity"
)

// LoyaltyUsecase tracks reward points earned from orders.
type LoyaltyUsecase interface {
	// GetAccount returns the user's loyalty account, creating an empty
	// bronze account on first access.
	GetAccount(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyAccount, error)

	// AwardForOrder credits points for a paid order amount, applying the
	// account's tier multiplier and promoting the tier when lifetime
	// points cross a threshold. Returns the points awarded.
	AwardForOrder(ctx context.Context, userID uuid.UUID, orderAmount float64) (int, error)
}
