package usecase

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// ProductDetail is a product with its per-size stock view.
type ProductDetail struct {
	Product   *entity.Product            `json:"product"`
	Inventory []*entity.ProductInventory `json:"inventory"`
}

// ProductUsecase serves catalog reads.
type ProductUsecase interface {
	// ListProducts retrieves catalog products matching the filter.
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error)

	// GetProduct retrieves one product with its inventory joined in.
	GetProduct(ctx context.Context, id int64) (*ProductDetail, error)
}
