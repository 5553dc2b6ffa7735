package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// inventoryRepository implements the repository.InventoryRepository interface.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{
		db: db,
	}
}

// FindByProduct retrieves all stock rows for a product, ordered by size.
func (repo *inventoryRepository) FindByProduct(ctx context.Context, productID int64) ([]*entity.ProductInventory, error) {
	var inventoryModels []*model.ProductInventoryModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("size ASC").
		Find(&inventoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find inventory by product")
	}

	records := make([]*entity.ProductInventory, 0, len(inventoryModels))
	for _, inventoryM := range inventoryModels {
		records = append(records, toInventoryDomain(inventoryM))
	}

	return records, nil
}

// FindByProductAndSize retrieves the stock row for (productID, size).
func (repo *inventoryRepository) FindByProductAndSize(ctx context.Context, productID int64, size string) (*entity.ProductInventory, error) {
	var inventoryM model.ProductInventoryModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ? AND size = ?", productID, size).
		First(&inventoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInventoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory by product and size")
	}

	return toInventoryDomain(&inventoryM), nil
}

// ReserveStock atomically moves quantity from available to reserved. The
// availability check lives in the WHERE clause so concurrent reservations
// cannot overdraw the row.
func (repo *inventoryRepository) ReserveStock(ctx context.Context, productID int64, size string, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductInventoryModel{}).
		Where("product_id = ? AND size = ? AND stock_quantity - reserved_quantity >= ?", productID, size, quantity).
		Update("reserved_quantity", gorm.Expr("reserved_quantity + ?", quantity))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reserve stock")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing row from an insufficient one.
		if _, err := repo.FindByProductAndSize(ctx, productID, size); err != nil {
			return err
		}

		return repository.ErrInsufficientStock
	}

	return nil
}

// ReleaseStock atomically returns a prior reservation to available stock.
// The counter never goes below zero even on a mismatched release.
func (repo *inventoryRepository) ReleaseStock(ctx context.Context, productID int64, size string, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductInventoryModel{}).
		Where("product_id = ? AND size = ?", productID, size).
		Update("reserved_quantity", gorm.Expr("GREATEST(reserved_quantity - ?, 0)", quantity))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to release stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInventoryNotFound
	}

	return nil
}

// UpdateStockQuantity sets the absolute stock level for (productID, size),
// creating the row if it does not exist yet.
func (repo *inventoryRepository) UpdateStockQuantity(ctx context.Context, productID int64, size string, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductInventoryModel{}).
		Where("product_id = ? AND size = ?", productID, size).
		Update("stock_quantity", quantity)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update stock quantity")
	}

	if result.RowsAffected == 0 {
		inventoryM := &model.ProductInventoryModel{
			ProductID:     productID,
			Size:          size,
			StockQuantity: quantity,
			UpdatedAt:     time.Now(),
		}
		if err := repo.db.WithContext(ctx).Create(inventoryM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				// Row appeared between the update and the insert; retry the update.
				return repo.UpdateStockQuantity(ctx, productID, size, quantity)
			}

			return errors.Wrap(err, "failed to create inventory record")
		}
	}

	return nil
}

// FindLowStock retrieves every stock row at or below its low-stock threshold.
func (repo *inventoryRepository) FindLowStock(ctx context.Context) ([]*entity.ProductInventory, error) {
	var inventoryModels []*model.ProductInventoryModel

	if err := repo.db.WithContext(ctx).
		Where("stock_quantity <= low_stock_threshold").
		Order("product_id ASC, size ASC").
		Find(&inventoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find low stock records")
	}

	records := make([]*entity.ProductInventory, 0, len(inventoryModels))
	for _, inventoryM := range inventoryModels {
		records = append(records, toInventoryDomain(inventoryM))
	}

	return records, nil
}

// --- Mapper Functions ---

// toInventoryDomain converts a GORM ProductInventoryModel to a domain entity.
func toInventoryDomain(data *model.ProductInventoryModel) *entity.ProductInventory {
	if data == nil {
		return nil
	}

	return &entity.ProductInventory{
		ProductID:         data.ProductID,
		Size:              data.Size,
		StockQuantity:     data.StockQuantity,
		ReservedQuantity:  data.ReservedQuantity,
		SoldQuantity:      data.SoldQuantity,
		LowStockThreshold: data.LowStockThreshold,
		UpdatedAt:         data.UpdatedAt,
	}
}
