package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderService(t *testing.T) (*mockRepo.MockOrderRepository, *mockRepo.MockEmailQueueRepository, *mockSvc.MockQRCodeService, *orderService) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockEmailRepo := mockRepo.NewMockEmailQueueRepository(t)
	mockQRService := mockSvc.NewMockQRCodeService(t)
	service := NewOrderService(OrderServiceParams{
		OrderRepo:     mockOrderRepo,
		EmailRepo:     mockEmailRepo,
		QRCodeService: mockQRService,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return mockOrderRepo, mockEmailRepo, mockQRService, service.(*orderService)
}

func pendingOrder(userID uuid.UUID) *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		UserID:        userID,
		ContactEmail:  "asha@example.com",
		TotalAmount:   7797,
		Status:        entity.OrderStatusPending,
		PaymentMethod: entity.PaymentMethodCOD,
		PaymentStatus: entity.PaymentStatusPending,
		ShippingAddress: entity.ShippingAddress{
			FullName: "Asha Rao",
			City:     "Bengaluru",
			Pincode:  "560001",
		},
	}
}

func TestOrderService_GetOrder_Success(t *testing.T) {
	mockOrderRepo, _, _, service := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := pendingOrder(userID)

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	got, err := service.GetOrder(ctx, userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestOrderService_GetOrder_ForeignOrder(t *testing.T) {
	mockOrderRepo, _, _, service := newOrderService(t)

	ctx := context.Background()
	order := pendingOrder(uuid.New())

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	got, err := service.GetOrder(ctx, uuid.New(), order.ID)
	assert.Nil(t, got)
	assert.Equal(t, domainerrors.ErrOrderOwnershipViolation, err)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	mockOrderRepo, _, _, service := newOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	got, err := service.GetOrder(ctx, uuid.New(), orderID)
	assert.Nil(t, got)
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
}

func TestOrderService_PaymentQR_EncodesUPIDeepLink(t *testing.T) {
	mockOrderRepo, _, mockQRService, service := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	order := pendingOrder(userID)

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	expectedPNG := []byte("png-bytes")
	var payload string
	mockQRService.EXPECT().
		Generate(mock.AnythingOfType("string")).
		Run(func(p string) {
			payload = p
		}).
		Return(expectedPNG, nil)

	png, err := service.PaymentQR(ctx, userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, expectedPNG, png)
	assert.Contains(t, payload, "upi://pay?")
	assert.Contains(t, payload, "am=7797.00")
	assert.Contains(t, payload, "pa=store%40upi")
	assert.Contains(t, payload, "cu=INR")
}

func TestOrderService_UpdateStatus_PendingToProcessing(t *testing.T) {
	mockOrderRepo, mockEmailRepo, _, service := newOrderService(t)

	ctx := context.Background()
	order := pendingOrder(uuid.New())

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	mockOrderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, entity.OrderStatusProcessing).
		Return(nil)

	mockEmailRepo.EXPECT().
		Enqueue(ctx, mock.AnythingOfType("*entity.EmailRequest")).
		Run(func(_ context.Context, request *entity.EmailRequest) {
			assert.Equal(t, entity.EmailTypeShippingUpdate, request.EmailType)
			assert.Equal(t, "asha@example.com", request.RecipientEmail)
		}).
		Return(nil)

	updated, err := service.UpdateStatus(ctx, order.ID, entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, updated.Status)
}

func TestOrderService_UpdateStatus_RejectsBackwardTransition(t *testing.T) {
	mockOrderRepo, _, _, service := newOrderService(t)

	ctx := context.Background()
	order := pendingOrder(uuid.New())
	order.Status = entity.OrderStatusShipped

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	updated, err := service.UpdateStatus(ctx, order.ID, entity.OrderStatusPending)
	assert.Nil(t, updated)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
}

func TestOrderService_UpdateStatus_RejectsCancelAfterShipment(t *testing.T) {
	mockOrderRepo, _, _, service := newOrderService(t)

	ctx := context.Background()
	order := pendingOrder(uuid.New())
	order.Status = entity.OrderStatusShipped

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	_, err := service.UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled)
	assert.Error(t, err)
}

func TestOrderService_UpdateStatus_DeliveredSettlesCOD(t *testing.T) {
	mockOrderRepo, mockEmailRepo, _, service := newOrderService(t)

	ctx := context.Background()
	order := pendingOrder(uuid.New())
	order.Status = entity.OrderStatusShipped

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	mockOrderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, entity.OrderStatusDelivered).
		Return(nil)

	mockOrderRepo.EXPECT().
		UpdatePaymentStatus(ctx, order.ID, entity.PaymentStatusPaid).
		Return(nil)

	mockEmailRepo.EXPECT().Enqueue(ctx, mock.Anything).Return(nil)

	updated, err := service.UpdateStatus(ctx, order.ID, entity.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, updated.Status)
}

func TestOrderService_UpdateStatus_EmailFailureIsNonFatal(t *testing.T) {
	mockOrderRepo, mockEmailRepo, _, service := newOrderService(t)

	ctx := context.Background()
	order := pendingOrder(uuid.New())

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	mockOrderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, entity.OrderStatusProcessing).
		Return(nil)

	mockEmailRepo.EXPECT().
		Enqueue(ctx, mock.Anything).
		Return(assert.AnError)

	updated, err := service.UpdateStatus(ctx, order.ID, entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.NotNil(t, updated)
}

func TestOrderService_UpdateStatus_PushesToUserTopic(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockEmailRepo := mockRepo.NewMockEmailQueueRepository(t)
	mockNotifier := mockSvc.NewMockPushNotifier(t)
	service := NewOrderService(OrderServiceParams{
		OrderRepo:     mockOrderRepo,
		EmailRepo:     mockEmailRepo,
		QRCodeService: mockSvc.NewMockQRCodeService(t),
		PushNotifier:  mockNotifier,
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()
	order := pendingOrder(userID)

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, order.ID).
		Return(order, nil)

	mockOrderRepo.EXPECT().
		UpdateOrderStatus(ctx, order.ID, entity.OrderStatusProcessing).
		Return(nil)

	mockEmailRepo.EXPECT().Enqueue(ctx, mock.Anything).Return(nil)

	mockNotifier.EXPECT().
		SendToTopic(ctx, "orders-"+userID.String(), mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Run(func(_ context.Context, _, _, body string, data map[string]string) {
			assert.Contains(t, body, "processing")
			assert.Equal(t, order.ID.String(), data["order_id"])
		}).
		Return(assert.AnError) // push failure must stay non-fatal

	updated, err := service.UpdateStatus(ctx, order.ID, entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, updated.Status)
}

func TestOrderService_ListOrders(t *testing.T) {
	mockOrderRepo, _, _, service := newOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Order{pendingOrder(userID)}

	mockOrderRepo.EXPECT().
		FindOrdersByUser(ctx, userID, 20, 0).
		Return(expected, nil)

	orders, err := service.ListOrders(ctx, userID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}
