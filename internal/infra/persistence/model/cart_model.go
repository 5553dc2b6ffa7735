package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
// One row per authenticated user's (product, size) pair; the unique index
// makes the pair distinct per owner.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_items_owner_pair;index"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_cart_items_owner_pair"`
	Size      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_cart_items_owner_pair"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
