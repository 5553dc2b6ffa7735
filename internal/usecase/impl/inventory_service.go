package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	InventoryRepo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		inventoryRepo: params.InventoryRepo,
	}
}

// CheckAvailability reports whether quantity units of (productID, size) are
// available. A missing stock row reads as unavailable rather than an error.
func (s *inventoryService) CheckAvailability(ctx context.Context, productID int64, size string, quantity int) (*usecase.StockAvailability, error) {
	record, err := s.inventoryRepo.FindByProductAndSize(ctx, productID, size)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return &usecase.StockAvailability{}, nil
		}

		return nil, errors.Wrap(err, "failed to find inventory by product and size")
	}

	available := record.AvailableStock()

	return &usecase.StockAvailability{
		Available:    available >= quantity,
		CurrentStock: available,
		IsLowStock:   record.IsLowStock(),
	}, nil
}

// Reserve atomically holds quantity units of (productID, size)
func (s *inventoryService) Reserve(ctx context.Context, productID int64, size string, quantity int) error {
	if quantity < 1 {
		return domainerrors.ErrInvalidQuantity
	}

	if err := s.inventoryRepo.ReserveStock(ctx, productID, size, quantity); err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientStock):
			return domainerrors.ErrInsufficientStock
		case errors.Is(err, repository.ErrInventoryNotFound):
			return domainerrors.ErrInventoryNotFound
		}

		return errors.Wrap(err, "failed to reserve stock")
	}

	return nil
}

// Release returns a prior reservation to available stock
func (s *inventoryService) Release(ctx context.Context, productID int64, size string, quantity int) error {
	if quantity < 1 {
		return domainerrors.ErrInvalidQuantity
	}

	if err := s.inventoryRepo.ReleaseStock(ctx, productID, size, quantity); err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return domainerrors.ErrInventoryNotFound
		}

		return errors.Wrap(err, "failed to release stock")
	}

	return nil
}

// SetStock sets the absolute stock level for (productID, size)
func (s *inventoryService) SetStock(ctx context.Context, productID int64, size string, quantity int) error {
	if quantity < 0 {
		return domainerrors.ErrInvalidQuantity
	}

	if err := s.inventoryRepo.UpdateStockQuantity(ctx, productID, size, quantity); err != nil {
		return errors.Wrap(err, "failed to update stock quantity")
	}

	return nil
}

// LowStock lists every stock row at or below its low-stock threshold
func (s *inventoryService) LowStock(ctx context.Context) ([]*entity.ProductInventory, error) {
	records, err := s.inventoryRepo.FindLowStock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find low stock records")
	}

	return records, nil
}
