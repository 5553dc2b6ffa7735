package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLoyaltyService(t *testing.T) (*mockRepo.MockLoyaltyRepository, *mockRepo.MockTransactionManager, *mockRepo.MockRepositoryFactory, *loyaltyService) {
	mockLoyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	mockTxManager := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	service := NewLoyaltyService(LoyaltyServiceParams{
		LoyaltyRepo: mockLoyaltyRepo,
		TxManager:   mockTxManager,
		Config:      newTestConfig(),
	})

	return mockLoyaltyRepo, mockTxManager, mockFactory, service.(*loyaltyService)
}

func expectLoyaltyTx(mockTxManager *mockRepo.MockTransactionManager, mockFactory *mockRepo.MockRepositoryFactory, txRepo *mockRepo.MockLoyaltyRepository) {
	mockFactory.EXPECT().NewLoyaltyRepository().Return(txRepo)
	mockTxManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(mockFactory)
		})
}

func TestLoyaltyService_GetAccount_CreatesOnFirstAccess(t *testing.T) {
	mockLoyaltyRepo, _, _, service := newLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockLoyaltyRepo.EXPECT().
		FindAccountByUser(ctx, userID).
		Return(nil, repository.ErrLoyaltyAccountNotFound)

	mockLoyaltyRepo.EXPECT().
		CreateAccount(ctx, mock.AnythingOfType("*entity.LoyaltyAccount")).
		Return(nil)

	account, err := service.GetAccount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, account.UserID)
	assert.Equal(t, entity.TierBronze, account.Tier)
	assert.Zero(t, account.TotalPoints)
}

func TestLoyaltyService_AwardForOrder_BronzeBaseRate(t *testing.T) {
	mockLoyaltyRepo, mockTxManager, mockFactory, service := newLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockLoyaltyRepo.EXPECT().
		FindAccountByUser(ctx, userID).
		Return(&entity.LoyaltyAccount{UserID: userID, LifetimePoints: 100, Tier: entity.TierBronze}, nil)

	txRepo := mockRepo.NewMockLoyaltyRepository(t)
	expectLoyaltyTx(mockTxManager, mockFactory, txRepo)

	// 7797 rupees at 0.1 points per rupee, bronze multiplier 1 -> 779.
	txRepo.EXPECT().
		AddPoints(ctx, userID, 779).
		Return(nil)

	points, err := service.AwardForOrder(ctx, userID, 7797)
	require.NoError(t, err)
	assert.Equal(t, 779, points)
}

func TestLoyaltyService_AwardForOrder_PlatinumMultiplier(t *testing.T) {
	mockLoyaltyRepo, mockTxManager, mockFactory, service := newLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockLoyaltyRepo.EXPECT().
		FindAccountByUser(ctx, userID).
		Return(&entity.LoyaltyAccount{UserID: userID, LifetimePoints: 20000, Tier: entity.TierPlatinum}, nil)

	txRepo := mockRepo.NewMockLoyaltyRepository(t)
	expectLoyaltyTx(mockTxManager, mockFactory, txRepo)

	// 1000 rupees -> 100 base points, platinum doubles it.
	txRepo.EXPECT().
		AddPoints(ctx, userID, 200).
		Return(nil)

	points, err := service.AwardForOrder(ctx, userID, 1000)
	require.NoError(t, err)
	assert.Equal(t, 200, points)
}

func TestLoyaltyService_AwardForOrder_PromotesTierOnThreshold(t *testing.T) {
	mockLoyaltyRepo, mockTxManager, mockFactory, service := newLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockLoyaltyRepo.EXPECT().
		FindAccountByUser(ctx, userID).
		Return(&entity.LoyaltyAccount{UserID: userID, LifetimePoints: 900, Tier: entity.TierBronze}, nil)

	txRepo := mockRepo.NewMockLoyaltyRepository(t)
	expectLoyaltyTx(mockTxManager, mockFactory, txRepo)

	// 900 lifetime + 150 earned crosses the silver threshold.
	txRepo.EXPECT().
		AddPoints(ctx, userID, 150).
		Return(nil)

	txRepo.EXPECT().
		UpdateTier(ctx, userID, entity.TierSilver).
		Return(nil)

	points, err := service.AwardForOrder(ctx, userID, 1500)
	require.NoError(t, err)
	assert.Equal(t, 150, points)
}

func TestLoyaltyService_AwardForOrder_ZeroPointsSkipsWrite(t *testing.T) {
	mockLoyaltyRepo, _, _, service := newLoyaltyService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockLoyaltyRepo.EXPECT().
		FindAccountByUser(ctx, userID).
		Return(&entity.LoyaltyAccount{UserID: userID, Tier: entity.TierBronze}, nil)

	points, err := service.AwardForOrder(ctx, userID, 5)
	require.NoError(t, err)
	assert.Zero(t, points)
}
