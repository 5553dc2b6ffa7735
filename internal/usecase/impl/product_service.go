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

type productService struct {
	productRepo   repository.ProductRepository
	inventoryRepo repository.InventoryRepository
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo   repository.ProductRepository
	InventoryRepo repository.InventoryRepository
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:   params.ProductRepo,
		inventoryRepo: params.InventoryRepo,
	}
}

// ListProducts retrieves catalog products matching the filter
func (s *productService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct retrieves one product with its per-size stock view
func (s *productService) GetProduct(ctx context.Context, id int64) (*usecase.ProductDetail, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	inventory, err := s.inventoryRepo.FindByProduct(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find inventory by product")
	}

	return &usecase.ProductDetail{
		Product:   product,
		Inventory: inventory,
	}, nil
}
