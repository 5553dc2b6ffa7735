package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventoryService(t *testing.T) (*mockRepo.MockInventoryRepository, *inventoryService) {
	mockInventoryRepo := mockRepo.NewMockInventoryRepository(t)
	service := NewInventoryService(InventoryServiceParams{
		InventoryRepo: mockInventoryRepo,
	})

	return mockInventoryRepo, service.(*inventoryService)
}

func TestInventoryService_CheckAvailability_CountsReservations(t *testing.T) {
	mockInventoryRepo, service := newInventoryService(t)

	ctx := context.Background()

	mockInventoryRepo.EXPECT().
		FindByProductAndSize(ctx, int64(7), "M").
		Return(&entity.ProductInventory{
			ProductID:         7,
			Size:              "M",
			StockQuantity:     10,
			ReservedQuantity:  8,
			LowStockThreshold: 5,
		}, nil)

	availability, err := service.CheckAvailability(ctx, 7, "M", 3)
	require.NoError(t, err)
	assert.False(t, availability.Available)
	assert.Equal(t, 2, availability.CurrentStock)
}

func TestInventoryService_CheckAvailability_MissingRowIsUnavailable(t *testing.T) {
	mockInventoryRepo, service := newInventoryService(t)

	ctx := context.Background()

	mockInventoryRepo.EXPECT().
		FindByProductAndSize(ctx, int64(7), "XXL").
		Return(nil, repository.ErrInventoryNotFound)

	availability, err := service.CheckAvailability(ctx, 7, "XXL", 1)
	require.NoError(t, err)
	assert.False(t, availability.Available)
	assert.Zero(t, availability.CurrentStock)
}

func TestInventoryService_Reserve_InsufficientStock(t *testing.T) {
	mockInventoryRepo, service := newInventoryService(t)

	ctx := context.Background()

	mockInventoryRepo.EXPECT().
		ReserveStock(ctx, int64(7), "M", 5).
		Return(repository.ErrInsufficientStock)

	err := service.Reserve(ctx, 7, "M", 5)
	assert.Equal(t, domainerrors.ErrInsufficientStock, err)
}

func TestInventoryService_Reserve_InvalidQuantity(t *testing.T) {
	_, service := newInventoryService(t)

	err := service.Reserve(context.Background(), 7, "M", 0)
	assert.Equal(t, domainerrors.ErrInvalidQuantity, err)
}

func TestInventoryService_Release_Success(t *testing.T) {
	mockInventoryRepo, service := newInventoryService(t)

	ctx := context.Background()

	mockInventoryRepo.EXPECT().
		ReleaseStock(ctx, int64(7), "M", 2).
		Return(nil)

	require.NoError(t, service.Release(ctx, 7, "M", 2))
}

func TestInventoryService_LowStock(t *testing.T) {
	mockInventoryRepo, service := newInventoryService(t)

	ctx := context.Background()
	expected := []*entity.ProductInventory{
		{ProductID: 7, Size: "M", StockQuantity: 2, LowStockThreshold: 5},
	}

	mockInventoryRepo.EXPECT().
		FindLowStock(ctx).
		Return(expected, nil)

	records, err := service.LowStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, records)
}
