package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel is the GORM-specific struct for the 'coupons' table.
type CouponModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Code              string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	DiscountType      string    `gorm:"type:varchar(20);not null"`
	DiscountValue     float64   `gorm:"type:decimal(10,2);not null"`
	MaxDiscountAmount float64   `gorm:"type:decimal(10,2);not null;default:0"`
	MinPurchaseAmount float64   `gorm:"type:decimal(10,2);not null;default:0"`
	UsageLimit        int       `gorm:"not null;default:0"`
	UsedCount         int       `gorm:"not null;default:0"`
	ValidFrom         time.Time `gorm:"not null"`
	ValidUntil        time.Time `gorm:"not null"`
	IsActive          bool      `gorm:"not null;default:true"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}

// CouponUsageModel is the GORM-specific struct for the 'coupon_usage' table.
type CouponUsageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	CouponID       uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null"`
	DiscountAmount float64   `gorm:"type:decimal(10,2);not null"`
	UsedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (CouponUsageModel) TableName() string {
	return "coupon_usage"
}
