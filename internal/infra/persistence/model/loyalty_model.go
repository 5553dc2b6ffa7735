package model

import (
	"time"

	"github.com/google/uuid"
)

// LoyaltyAccountModel is the GORM-specific struct for the 'loyalty_points' table.
type LoyaltyAccountModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	TotalPoints    int       `gorm:"not null;default:0"`
	LifetimePoints int       `gorm:"not null;default:0"`
	Tier           string    `gorm:"type:varchar(20);not null;default:'bronze'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoyaltyAccountModel) TableName() string {
	return "loyalty_points"
}
