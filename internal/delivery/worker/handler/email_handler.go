// Package handler contains the mail worker's queue processing.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var orderConfirmationTmpl = template.Must(template.New("order_confirmation").Parse(
	`Hi {{or .customer_name "there"}},

Thanks for your order {{.order_id}}!

Total: Rs. {{.total_amount}}
Payment: {{.payment_method}}

We will email you again when it ships.
`))

var shippingUpdateTmpl = template.Must(template.New("shipping_update").Parse(
	`Hi {{or .customer_name "there"}},

Your order {{.order_id}} is now {{.status}}.
`))

// EmailHandler drains the email queue: render, send, mark.
type EmailHandler struct {
	emailRepo  repository.EmailQueueRepository
	mailSender service.MailSender
	logger     *slog.Logger
}

// EmailHandlerParams holds dependencies for the EmailHandler
type EmailHandlerParams struct {
	fx.In

	EmailRepo  repository.EmailQueueRepository
	MailSender service.MailSender
	Logger     *slog.Logger
}

// NewEmailHandler creates a new email queue handler
func NewEmailHandler(params EmailHandlerParams) *EmailHandler {
	return &EmailHandler{
		emailRepo:  params.EmailRepo,
		mailSender: params.MailSender,
		logger:     params.Logger,
	}
}

// ProcessBatch drains up to batchSize pending emails. Per-email failures are
// recorded on the queue row and never abort the batch. Returns how many
// emails were delivered.
func (h *EmailHandler) ProcessBatch(ctx context.Context, batchSize int) (int, error) {
	pending, err := h.emailRepo.FindPending(ctx, batchSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to fetch pending emails")
	}

	sent := 0
	for _, request := range pending {
		if err := h.processOne(ctx, request); err != nil {
			h.logger.ErrorContext(ctx, "email delivery failed",
				slog.String("email_id", request.ID.String()),
				slog.String("email_type", string(request.EmailType)),
				slog.Any("error", err),
			)

			if markErr := h.emailRepo.MarkFailed(ctx, request.ID, err.Error()); markErr != nil {
				h.logger.ErrorContext(ctx, "failed to mark email as failed",
					slog.String("email_id", request.ID.String()),
					slog.Any("error", markErr),
				)
			}

			continue
		}

		if err := h.emailRepo.MarkSent(ctx, request.ID); err != nil {
			// The mail went out; a stuck pending row means one duplicate on
			// the next poll, which is preferable to a lost confirmation.
			h.logger.ErrorContext(ctx, "failed to mark email as sent",
				slog.String("email_id", request.ID.String()),
				slog.Any("error", err),
			)
		}
		sent++
	}

	return sent, nil
}

// processOne renders and delivers a single queued email.
func (h *EmailHandler) processOne(ctx context.Context, request *entity.EmailRequest) error {
	body, err := renderBody(request)
	if err != nil {
		return err
	}

	return h.mailSender.Send(ctx, request, body)
}

// renderBody picks the template for the email type and renders it with the
// queued template data.
func renderBody(request *entity.EmailRequest) (string, error) {
	var tmpl *template.Template
	switch request.EmailType {
	case entity.EmailTypeOrderConfirmation:
		tmpl = orderConfirmationTmpl
	case entity.EmailTypeShippingUpdate:
		tmpl = shippingUpdateTmpl
	default:
		return "", fmt.Errorf("unknown email type: %s", request.EmailType)
	}

	data := request.TemplateData
	if data == nil {
		data = map[string]any{}
	}
	if request.RecipientName != "" {
		if _, ok := data["customer_name"]; !ok {
			data["customer_name"] = request.RecipientName
		}
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", errors.Wrap(err, "failed to render email body")
	}

	return sb.String(), nil
}
