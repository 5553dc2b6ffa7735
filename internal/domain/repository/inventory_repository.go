package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// Domain-specific errors for inventory persistence.
var (
	// ErrInventoryNotFound is returned when no stock row exists for (product, size).
	ErrInventoryNotFound = errors.New("inventory record not found")
	// ErrInsufficientStock is returned when a guarded stock mutation would go negative.
	ErrInsufficientStock = errors.New("insufficient available stock")
)

// InventoryRepository defines the interface for per-size stock counters.
// Reserve and Release are atomic guarded UPDATEs, unlike the cart's
// read-then-write quantity increment.
type InventoryRepository interface {
	// FindByProduct retrieves all stock rows for a product, ordered by size.
	FindByProduct(ctx context.Context, productID int64) ([]*entity.ProductInventory, error)

	// FindByProductAndSize retrieves the stock row for (productID, size).
	// Returns ErrInventoryNotFound when no row exists.
	FindByProductAndSize(ctx context.Context, productID int64, size string) (*entity.ProductInventory, error)

	// ReserveStock atomically moves quantity from available to reserved.
	// Fails with ErrInsufficientStock when available stock is too low; the
	// counters are left untouched in that case.
	ReserveStock(ctx context.Context, productID int64, size string, quantity int) error

	// ReleaseStock atomically returns a prior reservation to available stock.
	ReleaseStock(ctx context.Context, productID int64, size string, quantity int) error

	// UpdateStockQuantity sets the absolute stock level for (productID, size).
	UpdateStockQuantity(ctx context.Context, productID int64, size string, quantity int) error

	// FindLowStock retrieves every stock row at or below its low-stock threshold.
	FindLowStock(ctx context.Context) ([]*entity.ProductInventory, error)
}
