package model

import (
	"time"

	"github.com/google/uuid"
)

// ShippingAddressData is the by-value address snapshot stored on an order row
// as a jsonb column. It mirrors the saved address at checkout time and is
// never updated afterwards.
type ShippingAddressData struct {
	FullName     string `json:"full_name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
}

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID              uuid.UUID           `gorm:"type:uuid;primary_key"`
	UserID          uuid.UUID           `gorm:"type:uuid;not null;index"`
	ContactEmail    string              `gorm:"type:varchar(255)"`
	TotalAmount     float64             `gorm:"type:decimal(10,2);not null"`
	Status          string              `gorm:"type:varchar(20);not null;default:'pending';index"`
	ShippingAddress ShippingAddressData `gorm:"type:jsonb;serializer:json;not null"`
	PaymentMethod   string              `gorm:"type:varchar(20);not null"`
	PaymentStatus   string              `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// The unique index on (order_id, product_id, size) lets partial-order repair
// replay item inserts without duplicating rows.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_pair;index"`
	ProductID int64     `gorm:"not null;uniqueIndex:idx_order_items_order_pair"`
	Size      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_order_items_order_pair"`
	Quantity  int       `gorm:"not null"`
	Price     float64   `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
