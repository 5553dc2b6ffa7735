package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// MailSender delivers one rendered email. Implementations talk to the actual
// transport (SMTP in production); the queue/retry policy stays in the worker.
type MailSender interface {
	// Send delivers the email described by the queued request.
	Send(ctx context.Context, request *entity.EmailRequest, body string) error
}
