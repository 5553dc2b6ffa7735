package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// loyaltyRepository implements the repository.LoyaltyRepository interface.
type loyaltyRepository struct {
	db *gorm.DB
}

// NewLoyaltyRepository is the constructor for loyaltyRepository. The db handle
// may be a transaction when point awards run under the TransactionManager.
func NewLoyaltyRepository(db *gorm.DB) repository.LoyaltyRepository {
	return &loyaltyRepository{
		db: db,
	}
}

// FindAccountByUser retrieves the user's loyalty account.
func (repo *loyaltyRepository) FindAccountByUser(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyAccount, error) {
	var accountM model.LoyaltyAccountModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoyaltyAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find loyalty account")
	}

	return toLoyaltyAccountDomain(&accountM), nil
}

// CreateAccount persists a fresh loyalty account.
func (repo *loyaltyRepository) CreateAccount(ctx context.Context, account *entity.LoyaltyAccount) error {
	accountM := &model.LoyaltyAccountModel{
		ID:             account.ID,
		UserID:         account.UserID,
		TotalPoints:    account.TotalPoints,
		LifetimePoints: account.LifetimePoints,
		Tier:           string(account.Tier),
	}
	if accountM.ID == uuid.Nil {
		accountM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Concurrent first-award already created the row.
			return domainerrors.NewDatabaseExecuteError(err, "loyalty account already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create loyalty account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// AddPoints atomically adds earned points to both balances.
func (repo *loyaltyRepository) AddPoints(ctx context.Context, userID uuid.UUID, points int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyAccountModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"total_points":    gorm.Expr("total_points + ?", points),
			"lifetime_points": gorm.Expr("lifetime_points + ?", points),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to add loyalty points")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLoyaltyAccountNotFound
	}

	return nil
}

// UpdateTier sets the account's tier.
func (repo *loyaltyRepository) UpdateTier(ctx context.Context, userID uuid.UUID, tier entity.LoyaltyTier) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LoyaltyAccountModel{}).
		Where("user_id = ?", userID).
		Update("tier", string(tier))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update loyalty tier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLoyaltyAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLoyaltyAccountDomain converts a GORM LoyaltyAccountModel to a domain entity.
func toLoyaltyAccountDomain(data *model.LoyaltyAccountModel) *entity.LoyaltyAccount {
	if data == nil {
		return nil
	}

	return &entity.LoyaltyAccount{
		ID:             data.ID,
		UserID:         data.UserID,
		TotalPoints:    data.TotalPoints,
		LifetimePoints: data.LifetimePoints,
		Tier:           entity.LoyaltyTier(data.Tier),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
