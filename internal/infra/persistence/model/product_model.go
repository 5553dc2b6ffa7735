// Package model contains the GORM-specific persistence structs.
package model

import "time"

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID             int64    `gorm:"primaryKey;autoIncrement"`
	Name           string   `gorm:"type:varchar(255);not null"`
	Description    string   `gorm:"type:text"`
	Price          float64  `gorm:"type:decimal(10,2);not null"`
	ThumbnailURL   string   `gorm:"type:text"`
	AvailableSizes []string `gorm:"type:jsonb;serializer:json"`
	Category       string   `gorm:"type:varchar(100);index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductInventoryModel is the GORM-specific struct for the 'product_inventory'
// table. One row per (product, size), keyed by the composite pair.
type ProductInventoryModel struct {
	ProductID         int64  `gorm:"primaryKey;autoIncrement:false"`
	Size              string `gorm:"type:varchar(10);primaryKey"`
	StockQuantity     int    `gorm:"not null;default:0"`
	ReservedQuantity  int    `gorm:"not null;default:0"`
	SoldQuantity      int    `gorm:"not null;default:0"`
	LowStockThreshold int    `gorm:"not null;default:5"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductInventoryModel) TableName() string {
	return "product_inventory"
}
