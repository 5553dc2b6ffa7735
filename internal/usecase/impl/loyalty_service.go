package impl

import (
	"context"
	"math"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type loyaltyService struct {
	loyaltyRepo repository.LoyaltyRepository
	txManager   repository.TransactionManager
	config      *config.Config
}

// LoyaltyServiceParams holds dependencies for LoyaltyService, injected by Fx.
type LoyaltyServiceParams struct {
	fx.In

	LoyaltyRepo repository.LoyaltyRepository
	TxManager   repository.TransactionManager
	Config      *config.Config
}

// NewLoyaltyService creates a new loyalty service instance
func NewLoyaltyService(params LoyaltyServiceParams) usecase.LoyaltyUsecase {
	return &loyaltyService{
		loyaltyRepo: params.LoyaltyRepo,
		txManager:   params.TxManager,
		config:      params.Config,
	}
}

// GetAccount returns the user's loyalty account, creating an empty bronze
// account on first access.
func (s *loyaltyService) GetAccount(ctx context.Context, userID uuid.UUID) (*entity.LoyaltyAccount, error) {
	account, err := s.loyaltyRepo.FindAccountByUser(ctx, userID)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, repository.ErrLoyaltyAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find loyalty account by user")
	}

	account = &entity.LoyaltyAccount{
		ID:        uuid.New(),
		UserID:    userID,
		Tier:      entity.TierBronze,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.loyaltyRepo.CreateAccount(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create loyalty account")
	}

	return account, nil
}

// AwardForOrder credits points for a paid order amount. Base earn rate comes
// from config, scaled by the account's tier multiplier; crossing a lifetime
// threshold promotes the tier. Point balances and the tier change write in
// one transaction.
func (s *loyaltyService) AwardForOrder(ctx context.Context, userID uuid.UUID, orderAmount float64) (int, error) {
	account, err := s.GetAccount(ctx, userID)
	if err != nil {
		return 0, err
	}

	base := orderAmount * s.config.Loyalty.PointsPerRupee
	points := int(math.Floor(base * account.Tier.PointsMultiplier()))
	if points <= 0 {
		return 0, nil
	}

	newTier := entity.TierForLifetimePoints(account.LifetimePoints + points)

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txLoyaltyRepo := factory.NewLoyaltyRepository()

		if err := txLoyaltyRepo.AddPoints(ctx, userID, points); err != nil {
			return errors.Wrap(err, "failed to add loyalty points")
		}

		if newTier != account.Tier {
			if err := txLoyaltyRepo.UpdateTier(ctx, userID, newTier); err != nil {
				return errors.Wrap(err, "failed to update loyalty tier")
			}
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "loyalty award transaction failed")
	}

	return points, nil
}
