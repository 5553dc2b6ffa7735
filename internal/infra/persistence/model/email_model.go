package model

import (
	"time"

	"github.com/google/uuid"
)

// EmailQueueModel is the GORM-specific struct for the 'email_queue' table.
// The API appends pending rows; the mail worker drains them.
type EmailQueueModel struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key"`
	EmailType      string         `gorm:"type:varchar(50);not null"`
	RecipientEmail string         `gorm:"type:varchar(255);not null"`
	RecipientName  string         `gorm:"type:varchar(255)"`
	Subject        string         `gorm:"type:text;not null"`
	TemplateData   map[string]any `gorm:"type:jsonb;serializer:json"`
	Status         string         `gorm:"type:varchar(20);not null;default:'pending';index"`
	ErrorMessage   string         `gorm:"type:text"`
	CreatedAt      time.Time
	SentAt         *time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmailQueueModel) TableName() string {
	return "email_queue"
}
