// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrProductNotFound is returned when a product id does not resolve.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	Category string
	Limit    int
	Offset   int
}

// ProductRepository defines the interface for catalog reads.
type ProductRepository interface {
	// FindProductByID retrieves a product by its numeric id.
	// Returns ErrProductNotFound if the id does not resolve.
	FindProductByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindProductsByIDs retrieves all products matching the given ids in one
	// batched query. Missing ids are silently absent from the result.
	FindProductsByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error)

	// ListProducts retrieves catalog products matching the filter.
	ListProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}
