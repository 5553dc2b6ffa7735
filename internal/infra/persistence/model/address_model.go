package model

import (
	"time"

	"github.com/google/uuid"
)

// UserAddressModel is the GORM-specific struct for the 'user_addresses' table.
type UserAddressModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName     string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(20);not null"`
	AddressLine1 string    `gorm:"type:text;not null"`
	AddressLine2 string    `gorm:"type:text"`
	City         string    `gorm:"type:varchar(100);not null"`
	State        string    `gorm:"type:varchar(100);not null"`
	Pincode      string    `gorm:"type:varchar(6);not null"`
	IsDefault    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserAddressModel) TableName() string {
	return "user_addresses"
}
