package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrCouponNotFound is returned when no active coupon matches a code.
var ErrCouponNotFound = errors.New("coupon not found")

// CouponRepository defines the interface for coupon reads and redemption
// bookkeeping. Redemption (usage row + used-count increment) runs inside a
// TransactionManager transaction.
type CouponRepository interface {
	// FindActiveCouponByCode retrieves the active coupon for a code
	// (case-insensitive). Returns ErrCouponNotFound when none matches.
	FindActiveCouponByCode(ctx context.Context, code string) (*entity.Coupon, error)

	// CountUsageByUser returns how many times the user has redeemed the coupon.
	CountUsageByUser(ctx context.Context, couponID, userID uuid.UUID) (int64, error)

	// CreateUsage records one redemption of a coupon on an order.
	CreateUsage(ctx context.Context, usage *entity.CouponUsage) error

	// IncrementUsedCount atomically bumps the coupon's redemption counter.
	IncrementUsedCount(ctx context.Context, couponID uuid.UUID) error
}
