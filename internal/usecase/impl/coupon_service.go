package impl

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type couponService struct {
	couponRepo repository.CouponRepository
	txManager  repository.TransactionManager
}

// CouponServiceParams holds dependencies for CouponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	CouponRepo repository.CouponRepository
	TxManager  repository.TransactionManager
}

// NewCouponService creates a new coupon service instance
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		couponRepo: params.CouponRepo,
		txManager:  params.TxManager,
	}
}

// Validate checks a code against its activity window, usage limits, minimum
// purchase and per-user prior redemption.
func (s *couponService) Validate(ctx context.Context, code string, cartTotal float64, userID uuid.UUID) (*usecase.CouponValidation, error) {
	coupon, err := s.couponRepo.FindActiveCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrCouponInvalid
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	now := time.Now()
	if now.Before(coupon.ValidFrom) {
		return nil, domainerrors.ErrCouponNotYetValid
	}
	if now.After(coupon.ValidUntil) {
		return nil, domainerrors.ErrCouponExpired
	}

	if coupon.UsageLimit > 0 && coupon.UsedCount >= coupon.UsageLimit {
		return nil, domainerrors.ErrCouponLimitReached
	}

	if cartTotal < coupon.MinPurchaseAmount {
		return nil, domainerrors.ErrCouponMinPurchase
	}

	used, err := s.couponRepo.CountUsageByUser(ctx, coupon.ID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count coupon usage by user")
	}
	if used > 0 {
		return nil, domainerrors.ErrCouponAlreadyUsed
	}

	return &usecase.CouponValidation{
		Coupon:         coupon,
		DiscountAmount: coupon.DiscountFor(cartTotal),
	}, nil
}

// Redeem records the usage row and bumps the coupon's used count atomically.
func (s *couponService) Redeem(ctx context.Context, couponID, userID, orderID uuid.UUID, discountAmount float64) error {
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txCouponRepo := factory.NewCouponRepository()

		usage := &entity.CouponUsage{
			ID:             uuid.New(),
			CouponID:       couponID,
			UserID:         userID,
			OrderID:        orderID,
			DiscountAmount: discountAmount,
			UsedAt:         time.Now(),
		}
		if err := txCouponRepo.CreateUsage(ctx, usage); err != nil {
			return errors.Wrap(err, "failed to create coupon usage")
		}

		if err := txCouponRepo.IncrementUsedCount(ctx, couponID); err != nil {
			return errors.Wrap(err, "failed to increment coupon used count")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "coupon redemption transaction failed")
	}

	return nil
}
