package impl

import (
	"context"
	"log/slog"
	"math"
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

type checkoutService struct {
	cartUsecase    usecase.CartUsecase
	couponUsecase  usecase.CouponUsecase
	loyaltyUsecase usecase.LoyaltyUsecase
	addressRepo    repository.AddressRepository
	orderRepo      repository.OrderRepository
	emailRepo      repository.EmailQueueRepository
	publisher      service.EventPublisher
	config         *config.Config
	logger         *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	CartUsecase    usecase.CartUsecase
	CouponUsecase  usecase.CouponUsecase
	LoyaltyUsecase usecase.LoyaltyUsecase
	AddressRepo    repository.AddressRepository
	OrderRepo      repository.OrderRepository
	EmailRepo      repository.EmailQueueRepository
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cartUsecase:    params.CartUsecase,
		couponUsecase:  params.CouponUsecase,
		loyaltyUsecase: params.LoyaltyUsecase,
		addressRepo:    params.AddressRepo,
		orderRepo:      params.OrderRepo,
		emailRepo:      params.EmailRepo,
		publisher:      params.Publisher,
		config:         params.Config,
		logger:         params.Logger,
	}
}

// PlaceOrder materializes exactly one order from the user's cart.
//
// The write sequence is best-effort rather than transactional. The invariants
// it preserves, in order:
//  1. order insert failure is fatal and leaves the cart untouched
//  2. item insert failure keeps the order row and reports a PartialOrderError
//     carrying the order id; nothing is rolled back
//  3. everything after the items (coupon redemption, loyalty points, cart
//     clear, confirmation email, event publish) is logged on failure but
//     never fails the checkout
func (s *checkoutService) PlaceOrder(ctx context.Context, userID uuid.UUID, input usecase.CheckoutInput) (*usecase.PlacedOrder, error) {
	owner := entity.AuthenticatedOwner(userID)

	cart, err := s.cartUsecase.LoadCart(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}

	if !input.PaymentMethod.Valid() {
		return nil, domainerrors.ErrInvalidPaymentMethod
	}

	address, err := s.resolveAddress(ctx, userID, input.AddressID)
	if err != nil {
		return nil, err
	}

	subtotal := round2(cart.TotalPrice())

	var validation *usecase.CouponValidation
	if input.CouponCode != "" {
		validation, err = s.couponUsecase.Validate(ctx, input.CouponCode, subtotal, userID)
		if err != nil {
			return nil, err
		}
	}

	discount := 0.0
	if validation != nil {
		discount = validation.DiscountAmount
	}

	shipping := s.shippingFee(ctx, userID, subtotal)

	total := round2(subtotal - discount + shipping)
	if total < 0 {
		return nil, domainerrors.ErrInvalidOrderTotal
	}

	paymentStatus := entity.PaymentStatusPending
	if input.PaymentMethod == entity.PaymentMethodOnline {
		paymentStatus = entity.PaymentStatusPaid
	}

	order := &entity.Order{
		ID:              uuid.New(),
		UserID:          userID,
		ContactEmail:    input.Email,
		TotalAmount:     total,
		Status:          entity.OrderStatusPending,
		ShippingAddress: address.Snapshot(),
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   paymentStatus,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "order insert failed, checkout aborted",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrOrderCreationFailed
	}

	// Prices are frozen from the cart snapshot read above; a concurrent
	// catalog price change does not affect this order.
	items := orderItemsFromCart(order.ID, cart)
	if err := s.orderRepo.CreateOrderItems(ctx, items); err != nil {
		// The order row stays as a durable audit record.
		return nil, domainerrors.NewPartialOrderError(order.ID, err)
	}

	if validation != nil {
		if err := s.couponUsecase.Redeem(ctx, validation.Coupon.ID, userID, order.ID, discount); err != nil {
			s.logger.WarnContext(ctx, "coupon redemption failed after order placement",
				slog.String("orderID", order.ID.String()),
				slog.String("coupon", validation.Coupon.Code),
				slog.Any("error", err),
			)
		}
	}

	if _, err := s.loyaltyUsecase.AwardForOrder(ctx, userID, total); err != nil {
		s.logger.WarnContext(ctx, "loyalty award failed after order placement",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}

	if err := s.cartUsecase.ClearCart(ctx, owner); err != nil {
		s.logger.WarnContext(ctx, "cart clear failed after order placement",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}

	s.enqueueConfirmation(ctx, order, address.FullName, input.Email, cart.TotalItems())
	s.publishOrderPlaced(ctx, order, len(items))

	return &usecase.PlacedOrder{
		OrderID:     order.ID,
		TotalAmount: total,
		Subtotal:    subtotal,
		Shipping:    shipping,
		Discount:    discount,
	}, nil
}

// resolveAddress loads and authorizes the delivery address. The order embeds
// a by-value snapshot of it, never a reference.
func (s *checkoutService) resolveAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.UserAddress, error) {
	if addressID == uuid.Nil {
		return nil, domainerrors.ErrNoShippingAddress
	}

	address, err := s.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by id")
	}

	if address.UserID != userID {
		return nil, domainerrors.ErrAddressOwnershipViolation
	}

	return address, nil
}

// shippingFee charges the flat fee below the free-shipping threshold. Gold
// and platinum loyalty members always ship free; a loyalty read failure just
// falls back to the threshold rule.
func (s *checkoutService) shippingFee(ctx context.Context, userID uuid.UUID, subtotal float64) float64 {
	if subtotal > s.config.Checkout.FreeShippingThreshold {
		return 0
	}

	account, err := s.loyaltyUsecase.GetAccount(ctx, userID)
	if err == nil && account.Tier.FreeShipping() {
		return 0
	}

	return s.config.Checkout.ShippingFee
}

// enqueueConfirmation appends the order-confirmation email. Log-only on failure.
func (s *checkoutService) enqueueConfirmation(ctx context.Context, order *entity.Order, recipientName, recipientEmail string, itemCount int) {
	if recipientEmail == "" {
		return
	}

	request := &entity.EmailRequest{
		ID:             uuid.New(),
		EmailType:      entity.EmailTypeOrderConfirmation,
		RecipientEmail: recipientEmail,
		RecipientName:  recipientName,
		Subject:        "Order Confirmed - " + shortOrderRef(order.ID),
		TemplateData: map[string]any{
			"order_id":       order.ID.String(),
			"total_amount":   order.TotalAmount,
			"item_count":     itemCount,
			"payment_method": string(order.PaymentMethod),
		},
		Status:    entity.EmailStatusPending,
		CreatedAt: time.Now(),
	}

	if err := s.emailRepo.Enqueue(ctx, request); err != nil {
		s.logger.WarnContext(ctx, "confirmation email enqueue failed",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}
}

// publishOrderPlaced emits the order-placed event. Log-only on failure.
func (s *checkoutService) publishOrderPlaced(ctx context.Context, order *entity.Order, itemCount int) {
	event := &service.OrderPlacedEvent{
		OrderID:       order.ID.String(),
		UserID:        order.UserID.String(),
		TotalAmount:   order.TotalAmount,
		ItemCount:     itemCount,
		PaymentMethod: string(order.PaymentMethod),
	}

	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "order-placed event publish failed",
			slog.String("orderID", order.ID.String()),
			slog.Any("error", err),
		)
	}
}

// RepairOrder replays the item inserts for a partially materialized order
// from the user's still-uncleared cart, then finishes the cart-clear and
// confirmation steps. Items already persisted are deduplicated on
// (productID, size), so the call is safe to retry.
func (s *checkoutService) RepairOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) (*entity.Order, error) {
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

	persisted, err := s.orderRepo.FindItemsByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find items by order")
	}

	type pair struct {
		productID int64
		size      string
	}
	seen := make(map[pair]struct{}, len(persisted))
	for _, item := range persisted {
		seen[pair{item.ProductID, item.Size}] = struct{}{}
	}

	owner := entity.AuthenticatedOwner(userID)
	cart, err := s.cartUsecase.LoadCart(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	missing := make([]*entity.OrderItem, 0, len(cart.Lines))
	for _, item := range orderItemsFromCart(orderID, cart) {
		if _, ok := seen[pair{item.ProductID, item.Size}]; ok {
			continue
		}

		missing = append(missing, item)
	}

	if len(missing) > 0 {
		if err := s.orderRepo.CreateOrderItems(ctx, missing); err != nil {
			return nil, domainerrors.NewPartialOrderError(orderID, err)
		}
	}

	if err := s.cartUsecase.ClearCart(ctx, owner); err != nil {
		s.logger.WarnContext(ctx, "cart clear failed after order repair",
			slog.String("orderID", orderID.String()),
			slog.Any("error", err),
		)
	}

	// The confirmation was skipped when the original checkout aborted on the
	// item inserts. Send it only when this call actually replayed something;
	// a repeat repair with nothing missing must not double-send.
	if len(missing) > 0 {
		s.enqueueConfirmation(ctx, order, order.ShippingAddress.FullName, order.ContactEmail, cart.TotalItems())
	}

	repaired, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload repaired order")
	}

	return repaired, nil
}

// orderItemsFromCart freezes the cart lines into order items at their
// snapshot prices.
func orderItemsFromCart(orderID uuid.UUID, cart *entity.Cart) []*entity.OrderItem {
	items := make([]*entity.OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, &entity.OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: line.ProductID,
			Size:      line.Size,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
			CreatedAt: time.Now(),
		})
	}

	return items
}

// round2 rounds a rupee amount to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// shortOrderRef is the human-facing order reference used in email subjects.
func shortOrderRef(id uuid.UUID) string {
	s := id.String()
	if len(s) > 8 {
		s = s[:8]
	}

	return "#" + s
}
