package handler

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEmailHandler(t *testing.T) (*mockRepo.MockEmailQueueRepository, *mockSvc.MockMailSender, *EmailHandler) {
	mockEmailRepo := mockRepo.NewMockEmailQueueRepository(t)
	mockSender := mockSvc.NewMockMailSender(t)
	handler := NewEmailHandler(EmailHandlerParams{
		EmailRepo:  mockEmailRepo,
		MailSender: mockSender,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return mockEmailRepo, mockSender, handler
}

func confirmationRequest() *entity.EmailRequest {
	return &entity.EmailRequest{
		ID:             uuid.New(),
		EmailType:      entity.EmailTypeOrderConfirmation,
		RecipientEmail: "asha@example.com",
		RecipientName:  "Asha Rao",
		Subject:        "Order Confirmation",
		TemplateData: map[string]any{
			"order_id":       "a1b2c3d4",
			"total_amount":   "2349.00",
			"payment_method": "cod",
		},
		Status: entity.EmailStatusPending,
	}
}

func TestEmailHandler_ProcessBatch_SendsAndMarks(t *testing.T) {
	mockEmailRepo, mockSender, handler := newEmailHandler(t)

	ctx := context.Background()
	request := confirmationRequest()

	mockEmailRepo.EXPECT().
		FindPending(ctx, 20).
		Return([]*entity.EmailRequest{request}, nil)

	var body string
	mockSender.EXPECT().
		Send(ctx, request, mock.AnythingOfType("string")).
		Run(func(_ context.Context, _ *entity.EmailRequest, b string) {
			body = b
		}).
		Return(nil)

	mockEmailRepo.EXPECT().
		MarkSent(ctx, request.ID).
		Return(nil)

	sent, err := handler.ProcessBatch(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Contains(t, body, "Hi Asha Rao")
	assert.Contains(t, body, "a1b2c3d4")
	assert.Contains(t, body, "Rs. 2349.00")
}

func TestEmailHandler_ProcessBatch_FailureMarksFailedAndContinues(t *testing.T) {
	mockEmailRepo, mockSender, handler := newEmailHandler(t)

	ctx := context.Background()
	failing := confirmationRequest()
	working := confirmationRequest()

	mockEmailRepo.EXPECT().
		FindPending(ctx, 20).
		Return([]*entity.EmailRequest{failing, working}, nil)

	mockSender.EXPECT().
		Send(ctx, failing, mock.AnythingOfType("string")).
		Return(assert.AnError)

	mockEmailRepo.EXPECT().
		MarkFailed(ctx, failing.ID, assert.AnError.Error()).
		Return(nil)

	mockSender.EXPECT().
		Send(ctx, working, mock.AnythingOfType("string")).
		Return(nil)

	mockEmailRepo.EXPECT().
		MarkSent(ctx, working.ID).
		Return(nil)

	sent, err := handler.ProcessBatch(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
}

func TestEmailHandler_ProcessBatch_UnknownTypeMarksFailed(t *testing.T) {
	mockEmailRepo, _, handler := newEmailHandler(t)

	ctx := context.Background()
	request := confirmationRequest()
	request.EmailType = entity.EmailType("password_reset")

	mockEmailRepo.EXPECT().
		FindPending(ctx, 20).
		Return([]*entity.EmailRequest{request}, nil)

	mockEmailRepo.EXPECT().
		MarkFailed(ctx, request.ID, mock.AnythingOfType("string")).
		Return(nil)

	sent, err := handler.ProcessBatch(ctx, 20)
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestEmailHandler_ProcessBatch_FindPendingFailure(t *testing.T) {
	mockEmailRepo, _, handler := newEmailHandler(t)

	ctx := context.Background()

	mockEmailRepo.EXPECT().
		FindPending(ctx, 20).
		Return(nil, assert.AnError)

	sent, err := handler.ProcessBatch(ctx, 20)
	assert.Error(t, err)
	assert.Zero(t, sent)
}

func TestRenderBody_ShippingUpdate(t *testing.T) {
	request := &entity.EmailRequest{
		EmailType:     entity.EmailTypeShippingUpdate,
		RecipientName: "Asha Rao",
		TemplateData: map[string]any{
			"order_id": "a1b2c3d4",
			"status":   "shipped",
		},
	}

	body, err := renderBody(request)
	require.NoError(t, err)
	assert.Contains(t, body, "a1b2c3d4")
	assert.Contains(t, body, "shipped")
}

func TestRenderBody_NoRecipientNameFallsBack(t *testing.T) {
	request := &entity.EmailRequest{
		EmailType: entity.EmailTypeShippingUpdate,
		TemplateData: map[string]any{
			"order_id": "a1b2c3d4",
			"status":   "shipped",
		},
	}

	body, err := renderBody(request)
	require.NoError(t, err)
	assert.Contains(t, body, "Hi there")
}
