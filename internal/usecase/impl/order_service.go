package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo     repository.OrderRepository
	emailRepo     repository.EmailQueueRepository
	qrcodeService service.QRCodeService
	pushNotifier  service.PushNotifier
	config        *config.Config
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo     repository.OrderRepository
	EmailRepo     repository.EmailQueueRepository
	QRCodeService service.QRCodeService
	PushNotifier  service.PushNotifier
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:     params.OrderRepo,
		emailRepo:     params.EmailRepo,
		qrcodeService: params.QRCodeService,
		pushNotifier:  params.PushNotifier,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// GetOrder retrieves one of the user's orders with items
func (s *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders retrieves the user's orders, newest first
func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	orders, err := s.orderRepo.FindOrdersByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	return orders, nil
}

// PaymentQR renders a UPI deep-link QR code PNG for the order total.
func (s *orderService) PaymentQR(ctx context.Context, userID, orderID uuid.UUID) ([]byte, error) {
	order, err := s.findOwnedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.Generate(s.upiURI(order))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return png, nil
}

// upiURI builds the upi://pay deep link with the payee VPA, display name,
// order reference and amount.
func (s *orderService) upiURI(order *entity.Order) string {
	params := url.Values{}
	params.Set("pa", s.config.Checkout.UPIPayeeVPA)
	params.Set("pn", s.config.Checkout.UPIPayeeName)
	params.Set("tn", "Order "+shortOrderRef(order.ID))
	params.Set("am", fmt.Sprintf("%.2f", order.TotalAmount))
	params.Set("cu", "INR")

	return "upi://pay?" + params.Encode()
}

// UpdateStatus moves an order along its fulfillment lifecycle. A successful
// change enqueues a shipping-update email best-effort.
func (s *orderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidStatusTransition
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			fmt.Sprintf("from=%s to=%s", order.Status, status),
		)
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	// COD settles on delivery.
	if status == entity.OrderStatusDelivered && order.PaymentStatus == entity.PaymentStatusPending {
		if err := s.orderRepo.UpdatePaymentStatus(ctx, orderID, entity.PaymentStatusPaid); err != nil {
			s.logger.WarnContext(ctx, "payment status update failed on delivery",
				slog.String("orderID", orderID.String()),
				slog.Any("error", err),
			)
		}
	}

	s.enqueueShippingUpdate(ctx, order, status)
	s.notifyStatusChange(ctx, order, status)

	order.Status = status
	order.UpdatedAt = time.Now()

	return order, nil
}

// enqueueShippingUpdate appends the status-change email to the contact email
// snapshotted on the order at checkout. Log-only on failure.
func (s *orderService) enqueueShippingUpdate(ctx context.Context, order *entity.Order, status entity.OrderStatus) {
	if order.ContactEmail == "" {
		return
	}

	request := &entity.EmailRequest{
		ID:             uuid.New(),
		EmailType:      entity.EmailTypeShippingUpdate,
		RecipientEmail: order.ContactEmail,
		RecipientName:  order.ShippingAddress.FullName,
		Subject:        "Order Update - " + shortOrderRef(order.ID),
		TemplateData: map[string]any{
			"order_id": order.ID.String(),
			"status":   string(status),
		},
		Status:    entity.EmailStatusPending,
		CreatedAt: time.Now(),
	}

	if err := s.emailRepo.Enqueue(ctx, request); err != nil {
		s.logger.WarnContext(ctx, "shipping-update email enqueue failed",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}
}

// notifyStatusChange pushes the status change to the user's order topic.
// Push delivery is optional and log-only on failure.
func (s *orderService) notifyStatusChange(ctx context.Context, order *entity.Order, status entity.OrderStatus) {
	if s.pushNotifier == nil {
		return
	}

	topic := "orders-" + order.UserID.String()
	title := "Order " + shortOrderRef(order.ID)
	body := "Your order is now " + string(status)
	data := map[string]string{
		"order_id": order.ID.String(),
		"status":   string(status),
	}

	if err := s.pushNotifier.SendToTopic(ctx, topic, title, body, data); err != nil {
		s.logger.WarnContext(ctx, "status push notification failed",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}
}

// findOwnedOrder loads an order and enforces ownership.
func (s *orderService) findOwnedOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	if order.UserID != userID {
		return nil, domainerrors.ErrOrderOwnershipViolation
	}

	return order, nil
}
