package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// StockAvailability is the stock view returned to product pages.
type StockAvailability struct {
	Available    bool `json:"available"`
	CurrentStock int  `json:"current_stock"`
	IsLowStock   bool `json:"is_low_stock"`
}

// InventoryUsecase manages per-size stock counters. Reservation is exposed
// for checkout flows that opt into it; order placement itself does not
// decrement stock.
type InventoryUsecase interface {
	// CheckAvailability reports whether quantity units of (productID, size)
	// are available. A missing stock row reads as unavailable, not an error.
	CheckAvailability(ctx context.Context, productID int64, size string, quantity int) (*StockAvailability, error)

	// Reserve atomically holds quantity units of (productID, size).
	// Fails with ErrInsufficientStock when availability is too low.
	Reserve(ctx context.Context, productID int64, size string, quantity int) error

	// Release returns a prior reservation to available stock.
	Release(ctx context.Context, productID int64, size string, quantity int) error

	// SetStock sets the absolute stock level for (productID, size). Admin only.
	SetStock(ctx context.Context, productID int64, size string, quantity int) error

	// LowStock lists every stock row at or below its low-stock threshold. Admin only.
	LowStock(ctx context.Context) ([]*entity.ProductInventory, error)
}
