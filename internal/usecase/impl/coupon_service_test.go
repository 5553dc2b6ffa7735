package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCouponService(t *testing.T) (*mockRepo.MockCouponRepository, *mockRepo.MockTransactionManager, *mockRepo.MockRepositoryFactory, *couponService) {
	mockCouponRepo := mockRepo.NewMockCouponRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := NewCouponService(CouponServiceParams{
		CouponRepo: mockCouponRepo,
		TxManager:  mockTxManager,
	})

	return mockCouponRepo, mockTxManager, mockFactory, service.(*couponService)
}

func activeCoupon() *entity.Coupon {
	return &entity.Coupon{
		ID:                uuid.New(),
		Code:              "WELCOME10",
		DiscountType:      entity.DiscountTypePercentage,
		DiscountValue:     10,
		MaxDiscountAmount: 500,
		MinPurchaseAmount: 1000,
		UsageLimit:        100,
		UsedCount:         3,
		ValidFrom:         time.Now().Add(-24 * time.Hour),
		ValidUntil:        time.Now().Add(24 * time.Hour),
		IsActive:          true,
	}
}

func TestCouponService_Validate_PercentageCappedByMax(t *testing.T) {
	mockCouponRepo, _, _, service := newCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	coupon := activeCoupon()

	mockCouponRepo.EXPECT().
		FindActiveCouponByCode(ctx, "WELCOME10").
		Return(coupon, nil)

	mockCouponRepo.EXPECT().
		CountUsageByUser(ctx, coupon.ID, userID).
		Return(0, nil)

	// 10% of 7797 is 779.70, capped at 500.
	validation, err := service.Validate(ctx, "WELCOME10", 7797, userID)
	require.NoError(t, err)
	assert.Equal(t, float64(500), validation.DiscountAmount)
	assert.Equal(t, coupon, validation.Coupon)
}

func TestCouponService_Validate_UnknownCode(t *testing.T) {
	mockCouponRepo, _, _, service := newCouponService(t)

	ctx := context.Background()

	mockCouponRepo.EXPECT().
		FindActiveCouponByCode(ctx, "NOPE").
		Return(nil, repository.ErrCouponNotFound)

	validation, err := service.Validate(ctx, "NOPE", 7797, uuid.New())
	assert.Nil(t, validation)
	assert.Equal(t, domainerrors.ErrCouponInvalid, err)
}

func TestCouponService_Validate_Expired(t *testing.T) {
	mockCouponRepo, _, _, service := newCouponService(t)

	ctx := context.Background()
	coupon := activeCoupon()
	coupon.ValidUntil = time.Now().Add(-time.Hour)

	mockCouponRepo.EXPECT().
		FindActiveCouponByCode(ctx, "WELCOME10").
		Return(coupon, nil)

	_, err := service.Validate(ctx, "WELCOME10", 7797, uuid.New())
	assert.Equal(t, domainerrors.ErrCouponExpired, err)
}

func TestCouponService_Validate_NotYetValid(t *testing.T) {
	mockCouponRepo, _, _, service := newCouponService(t)

	ctx := context.Background()
	coupon := activeCoupon()
	coupon.ValidFrom = time.Now().Add(time.Hour)

	mockCouponRepo.EXPECT().
		FindActiveCouponByCode(ctx, "WELCOME10").
		Return(coupon, nil)

	_, err := service.Validate(ctx, "WELCOME10", 7797, uuid.New())
	assert.Equal(t, domainerrors.ErrCouponNotYetValid, err)
}

func TestCouponService_Validate_UsageLimitReached(t *testing.T) {
	mockCouponRepo, _, _, service := newCouponService(t)

	ctx := context.Background()
	coupon := activeCoupon()
	coupon.UsedCount = coupon.UsageLimit

	mockCouponRepo.EXPECT().
		FindActiveCouponByCode(ctx, "WELCOME10").
		Return(coupon, nil)

	_, err := service.Validate(ctx, "WELCOME10", 7797, uuid.New())
	assert.Equal(t, domainerrors.ErrCouponLimitReached, err)
}

func TestCouponService_Validate_BelowMinPurchase(t *testing.T) {
	mockCouponRepo, _, _, service := newCouponService(t)

	ctx := context.Background()

	mockCouponRepo.EXPECT().
		FindActiveCouponByCode(ctx, "WELCOME10").
		Return(activeCoupon(), nil)

	_, err := service.Validate(ctx, "WELCOME10", 500, uuid.New())
	assert.Equal(t, domainerrors.ErrCouponMinPurchase, err)
}

func TestCouponService_Validate_AlreadyUsedByUser(t *testing.T) {
	mockCouponRepo, _, _, service := newCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	coupon := activeCoupon()

	mockCouponRepo.EXPECT().
		FindActiveCouponByCode(ctx, "WELCOME10").
		Return(coupon, nil)

	mockCouponRepo.EXPECT().
		CountUsageByUser(ctx, coupon.ID, userID).
		Return(1, nil)

	_, err := service.Validate(ctx, "WELCOME10", 7797, userID)
	assert.Equal(t, domainerrors.ErrCouponAlreadyUsed, err)
}

func TestCouponService_Validate_FixedDiscountNeverExceedsTotal(t *testing.T) {
	mockCouponRepo, _, _, service := newCouponService(t)

	ctx := context.Background()
	userID := uuid.New()
	coupon := activeCoupon()
	coupon.DiscountType = entity.DiscountTypeFixed
	coupon.DiscountValue = 2000
	coupon.MinPurchaseAmount = 0

	mockCouponRepo.EXPECT().
		FindActiveCouponByCode(ctx, "WELCOME10").
		Return(coupon, nil)

	mockCouponRepo.EXPECT().
		CountUsageByUser(ctx, coupon.ID, userID).
		Return(0, nil)

	validation, err := service.Validate(ctx, "WELCOME10", 1200, userID)
	require.NoError(t, err)
	assert.Equal(t, float64(1200), validation.DiscountAmount)
}

func TestCouponService_Redeem_WritesUsageAndCountInOneTransaction(t *testing.T) {
	_, mockTxManager, mockFactory, service := newCouponService(t)

	ctx := context.Background()
	couponID := uuid.New()
	userID := uuid.New()
	orderID := uuid.New()

	txCouponRepo := mockRepo.NewMockCouponRepository(t)
	mockFactory.EXPECT().NewCouponRepository().Return(txCouponRepo)

	mockTxManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})

	txCouponRepo.EXPECT().
		CreateUsage(ctx, mock.AnythingOfType("*entity.CouponUsage")).
		Run(func(_ context.Context, usage *entity.CouponUsage) {
			assert.Equal(t, couponID, usage.CouponID)
			assert.Equal(t, orderID, usage.OrderID)
			assert.Equal(t, float64(500), usage.DiscountAmount)
		}).
		Return(nil)

	txCouponRepo.EXPECT().
		IncrementUsedCount(ctx, couponID).
		Return(nil)

	err := service.Redeem(ctx, couponID, userID, orderID, 500)
	require.NoError(t, err)
}
