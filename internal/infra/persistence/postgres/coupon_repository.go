package postgres

import (
	"context"
	"strings"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// couponRepository implements the repository.CouponRepository interface.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository. The db handle
// may be a transaction; the RepositoryFactory hands one in during redemption.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{
		db: db,
	}
}

// FindActiveCouponByCode retrieves the active coupon for a code, matched
// case-insensitively.
func (repo *couponRepository) FindActiveCouponByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var couponM model.CouponModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(code) = ? AND is_active = ?", strings.ToLower(code), true).
		First(&couponM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by code")
	}

	return toCouponDomain(&couponM), nil
}

// CountUsageByUser returns how many times the user has redeemed the coupon.
func (repo *couponRepository) CountUsageByUser(ctx context.Context, couponID, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CouponUsageModel{}).
		Where("coupon_id = ? AND user_id = ?", couponID, userID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count coupon usage")
	}

	return count, nil
}

// CreateUsage records one redemption of a coupon on an order.
func (repo *couponRepository) CreateUsage(ctx context.Context, usage *entity.CouponUsage) error {
	usageM := &model.CouponUsageModel{
		ID:             usage.ID,
		CouponID:       usage.CouponID,
		UserID:         usage.UserID,
		OrderID:        usage.OrderID,
		DiscountAmount: usage.DiscountAmount,
		UsedAt:         time.Now(),
	}
	if usageM.ID == uuid.Nil {
		usageM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(usageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record coupon usage")
	}

	usage.ID = usageM.ID
	usage.UsedAt = usageM.UsedAt

	return nil
}

// IncrementUsedCount atomically bumps the coupon's redemption counter.
func (repo *couponRepository) IncrementUsedCount(ctx context.Context, couponID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CouponModel{}).
		Where("id = ?", couponID).
		Update("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment coupon used count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCouponDomain converts a GORM CouponModel to a domain Coupon entity.
func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	return &entity.Coupon{
		ID:                data.ID,
		Code:              data.Code,
		DiscountType:      entity.DiscountType(data.DiscountType),
		DiscountValue:     data.DiscountValue,
		MaxDiscountAmount: data.MaxDiscountAmount,
		MinPurchaseAmount: data.MinPurchaseAmount,
		UsageLimit:        data.UsageLimit,
		UsedCount:         data.UsedCount,
		ValidFrom:         data.ValidFrom,
		ValidUntil:        data.ValidUntil,
		IsActive:          data.IsActive,
		CreatedAt:         data.CreatedAt,
	}
}
