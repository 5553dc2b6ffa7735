package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailType classifies a queued transactional email.
type EmailType string

const (
	EmailTypeOrderConfirmation EmailType = "order_confirmation"
	EmailTypeShippingUpdate    EmailType = "shipping_update"
)

// EmailStatus is the delivery state of a queued email.
type EmailStatus string

const (
	EmailStatusPending EmailStatus = "pending"
	EmailStatusSent    EmailStatus = "sent"
	EmailStatusFailed  EmailStatus = "failed"
)

// EmailRequest is one row of the append-only email queue. The storefront only
// ever appends pending rows; the mail worker drains them and flips the status.
type EmailRequest struct {
	ID             uuid.UUID      `json:"id"`
	EmailType      EmailType      `json:"email_type"`
	RecipientEmail string         `json:"recipient_email"`
	RecipientName  string         `json:"recipient_name"`
	Subject        string         `json:"subject"`
	TemplateData   map[string]any `json:"template_data"`
	Status         EmailStatus    `json:"status"`
	ErrorMessage   string         `json:"error_message,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	SentAt         *time.Time     `json:"sent_at,omitempty"`
}
