package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// EmailQueueRepository defines the interface for the append-only email queue.
// The storefront appends pending rows; the mail worker drains them.
type EmailQueueRepository interface {
	// Enqueue appends a pending email request to the queue.
	Enqueue(ctx context.Context, request *entity.EmailRequest) error

	// FindPending retrieves up to limit pending requests, oldest first.
	FindPending(ctx context.Context, limit int) ([]*entity.EmailRequest, error)

	// MarkSent flips a request to sent and stamps the send time.
	MarkSent(ctx context.Context, id uuid.UUID) error

	// MarkFailed flips a request to failed and records the delivery error.
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}
