package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	mockUC "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutMocks struct {
	cart      *mockUC.MockCartUsecase
	coupon    *mockUC.MockCouponUsecase
	loyalty   *mockUC.MockLoyaltyUsecase
	address   *mockRepo.MockAddressRepository
	order     *mockRepo.MockOrderRepository
	email     *mockRepo.MockEmailQueueRepository
	publisher *mockSvc.MockEventPublisher
}

func newCheckoutService(t *testing.T) (*checkoutMocks, usecase.CheckoutUsecase) {
	m := &checkoutMocks{
		cart:      mockUC.NewMockCartUsecase(t),
		coupon:    mockUC.NewMockCouponUsecase(t),
		loyalty:   mockUC.NewMockLoyaltyUsecase(t),
		address:   mockRepo.NewMockAddressRepository(t),
		order:     mockRepo.NewMockOrderRepository(t),
		email:     mockRepo.NewMockEmailQueueRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	service := NewCheckoutService(CheckoutServiceParams{
		CartUsecase:    m.cart,
		CouponUsecase:  m.coupon,
		LoyaltyUsecase: m.loyalty,
		AddressRepo:    m.address,
		OrderRepo:      m.order,
		EmailRepo:      m.email,
		Publisher:      m.publisher,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return m, service
}

// twoTeesAndAHoodie is the standard fixture: 2 x 2499 + 1 x 2799 = 7797.
func twoTeesAndAHoodie(owner entity.CartOwner) *entity.Cart {
	return &entity.Cart{
		Owner: owner,
		Lines: []*entity.CartLine{
			{
				ID:        uuid.NewString(),
				ProductID: 7,
				Size:      "M",
				Quantity:  2,
				Product:   entity.ProductSnapshot{ID: 7, Name: "Oversized Tee", Price: 2499},
			},
			{
				ID:        uuid.NewString(),
				ProductID: 12,
				Size:      "L",
				Quantity:  1,
				Product:   entity.ProductSnapshot{ID: 12, Name: "Zip Hoodie", Price: 2799},
			},
		},
	}
}

func testAddress(userID uuid.UUID) *entity.UserAddress {
	return &entity.UserAddress{
		ID:           uuid.New(),
		UserID:       userID,
		FullName:     "Asha Rao",
		Phone:        "9876543210",
		AddressLine1: "14 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
	}
}

func TestCheckoutService_PlaceOrder_CODFreeShipping(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)
	address := testAddress(userID)
	cart := twoTeesAndAHoodie(owner)

	m.cart.EXPECT().LoadCart(ctx, owner).Return(cart, nil)
	m.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)

	var createdOrder *entity.Order
	m.order.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			createdOrder = order
		}).
		Return(nil)

	var createdItems []*entity.OrderItem
	m.order.EXPECT().
		CreateOrderItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).
		Run(func(_ context.Context, items []*entity.OrderItem) {
			createdItems = items
		}).
		Return(nil)

	m.loyalty.EXPECT().AwardForOrder(ctx, userID, float64(7797)).Return(779, nil)
	m.cart.EXPECT().ClearCart(ctx, owner).Return(nil)
	m.email.EXPECT().Enqueue(ctx, mock.AnythingOfType("*entity.EmailRequest")).Return(nil)
	m.publisher.EXPECT().PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).Return(nil)

	placed, err := service.PlaceOrder(ctx, userID, usecase.CheckoutInput{
		AddressID:     address.ID,
		PaymentMethod: entity.PaymentMethodCOD,
		Email:         "asha@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, float64(7797), placed.Subtotal)
	assert.Equal(t, float64(0), placed.Shipping, "subtotal above the threshold ships free")
	assert.Equal(t, float64(7797), placed.TotalAmount)

	require.NotNil(t, createdOrder)
	assert.Equal(t, entity.OrderStatusPending, createdOrder.Status)
	assert.Equal(t, entity.PaymentStatusPending, createdOrder.PaymentStatus, "cash on delivery settles later")
	assert.Equal(t, address.FullName, createdOrder.ShippingAddress.FullName)
	assert.Equal(t, "asha@example.com", createdOrder.ContactEmail)

	require.Len(t, createdItems, 2)
	assert.Equal(t, float64(2499), createdItems[0].Price)
	assert.Equal(t, float64(2799), createdItems[1].Price)
	for _, item := range createdItems {
		assert.Equal(t, createdOrder.ID, item.OrderID)
	}
}

func TestCheckoutService_PlaceOrder_OnlineMarksPaid(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)
	address := testAddress(userID)

	m.cart.EXPECT().LoadCart(ctx, owner).Return(twoTeesAndAHoodie(owner), nil)
	m.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)

	var createdOrder *entity.Order
	m.order.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			createdOrder = order
		}).
		Return(nil)
	m.order.EXPECT().CreateOrderItems(ctx, mock.Anything).Return(nil)

	m.loyalty.EXPECT().AwardForOrder(ctx, userID, float64(7797)).Return(779, nil)
	m.cart.EXPECT().ClearCart(ctx, owner).Return(nil)
	m.email.EXPECT().Enqueue(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil)

	_, err := service.PlaceOrder(ctx, userID, usecase.CheckoutInput{
		AddressID:     address.ID,
		PaymentMethod: entity.PaymentMethodOnline,
		Email:         "asha@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, createdOrder.PaymentStatus)
}

func TestCheckoutService_PlaceOrder_ShippingFeeBelowThreshold(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)
	address := testAddress(userID)

	cart := &entity.Cart{
		Owner: owner,
		Lines: []*entity.CartLine{
			{ID: uuid.NewString(), ProductID: 7, Size: "M", Quantity: 1,
				Product: entity.ProductSnapshot{ID: 7, Price: 1500}},
		},
	}

	m.cart.EXPECT().LoadCart(ctx, owner).Return(cart, nil)
	m.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	m.loyalty.EXPECT().
		GetAccount(ctx, userID).
		Return(&entity.LoyaltyAccount{UserID: userID, Tier: entity.TierBronze}, nil)

	m.order.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil)
	m.order.EXPECT().CreateOrderItems(ctx, mock.Anything).Return(nil)
	m.loyalty.EXPECT().AwardForOrder(ctx, userID, float64(1650)).Return(165, nil)
	m.cart.EXPECT().ClearCart(ctx, owner).Return(nil)
	m.email.EXPECT().Enqueue(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil)

	placed, err := service.PlaceOrder(ctx, userID, usecase.CheckoutInput{
		AddressID:     address.ID,
		PaymentMethod: entity.PaymentMethodCOD,
		Email:         "asha@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(150), placed.Shipping)
	assert.Equal(t, float64(1650), placed.TotalAmount)
}

func TestCheckoutService_PlaceOrder_GoldTierShipsFree(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)
	address := testAddress(userID)

	cart := &entity.Cart{
		Owner: owner,
		Lines: []*entity.CartLine{
			{ID: uuid.NewString(), ProductID: 7, Size: "M", Quantity: 1,
				Product: entity.ProductSnapshot{ID: 7, Price: 1500}},
		},
	}

	m.cart.EXPECT().LoadCart(ctx, owner).Return(cart, nil)
	m.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	m.loyalty.EXPECT().
		GetAccount(ctx, userID).
		Return(&entity.LoyaltyAccount{UserID: userID, Tier: entity.TierGold}, nil)

	m.order.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil)
	m.order.EXPECT().CreateOrderItems(ctx, mock.Anything).Return(nil)
	m.loyalty.EXPECT().AwardForOrder(ctx, userID, float64(1500)).Return(225, nil)
	m.cart.EXPECT().ClearCart(ctx, owner).Return(nil)
	m.email.EXPECT().Enqueue(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil)

	placed, err := service.PlaceOrder(ctx, userID, usecase.CheckoutInput{
		AddressID:     address.ID,
		PaymentMethod: entity.PaymentMethodCOD,
		Email:         "asha@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(0), placed.Shipping)
}

func TestCheckoutService_PlaceOrder_EmptyCart(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)

	m.cart.EXPECT().
		LoadCart(ctx, owner).
		Return(&entity.Cart{Owner: owner, Lines: []*entity.CartLine{}}, nil)

	placed, err := service.PlaceOrder(ctx, userID, usecase.CheckoutInput{
		AddressID:     uuid.New(),
		PaymentMethod: entity.PaymentMethodCOD,
	})
	assert.Nil(t, placed)
	assert.Equal(t, domainerrors.ErrEmptyCart, err)
}

func TestCheckoutService_PlaceOrder_NoAddressSelected(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)

	m.cart.EXPECT().LoadCart(ctx, owner).Return(twoTeesAndAHoodie(owner), nil)

	placed, err := service.PlaceOrder(ctx, userID, usecase.CheckoutInput{
		PaymentMethod: entity.PaymentMethodCOD,
	})
	assert.Nil(t, placed)
	assert.Equal(t, domainerrors.ErrNoShippingAddress, err)
}

func TestCheckoutService_PlaceOrder_ForeignAddress(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)
	otherAddress := testAddress(uuid.New())

	m.cart.EXPECT().LoadCart(ctx, owner).Return(twoTeesAndAHoodie(owner), nil)
	m.address.EXPECT().FindAddressByID(ctx, otherAddress.ID).Return(otherAddress, nil)

	placed, err := service.PlaceOrder(ctx, userID, usecase.CheckoutInput{
		AddressID:     otherAddress.ID,
		PaymentMethod: entity.PaymentMethodCOD,
	})
	assert.Nil(t, placed)
	assert.Equal(t, domainerrors.ErrAddressOwnershipViolation, err)
}

func TestCheckoutService_PlaceOrder_InvalidPaymentMethod(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)

	m.cart.EXPECT().LoadCart(ctx, owner).Return(twoTeesAndAHoodie(owner), nil)

	placed, err := service.PlaceOrder(ctx, userID, usecase.CheckoutInput{
		AddressID:     uuid.New(),
		PaymentMethod: entity.PaymentMethod("crypto"),
	})
	assert.Nil(t, placed)
	assert.Equal(t, domainerrors.ErrInvalidPaymentMethod, err)
}

func TestCheckoutService_PlaceOrder_OrderInsertFailureIsFatal(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)
	address := testAddress(userID)

	m.cart.EXPECT().LoadCart(ctx, owner).Return(twoTeesAndAHoodie(owner), nil)
	m.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)

	// Order insert fails: nothing else runs, the cart stays untouched.
	m.order.EXPECT().
		CreateOrder(ctx, mock.Anything).
		Return(errors.New("insert failed"))

	placed, err := service.PlaceOrder(ctx, userID, usecase.CheckoutInput{
		AddressID:     address.ID,
		PaymentMethod: entity.PaymentMethodCOD,
	})
	assert.Nil(t, placed)
	assert.Equal(t, domainerrors.ErrOrderCreationFailed, err)
}

func TestCheckoutService_PlaceOrder_ItemInsertFailureReportsPartialOrder(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)
	address := testAddress(userID)

	m.cart.EXPECT().LoadCart(ctx, owner).Return(twoTeesAndAHoodie(owner), nil)
	m.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)

	var createdOrder *entity.Order
	m.order.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			createdOrder = order
		}).
		Return(nil)

	// The order row is kept; no delete, no cart clear, no email.
	m.order.EXPECT().
		CreateOrderItems(ctx, mock.Anything).
		Return(errors.New("batch insert failed"))

	placed, err := service.PlaceOrder(ctx, userID, usecase.CheckoutInput{
		AddressID:     address.ID,
		PaymentMethod: entity.PaymentMethodCOD,
	})
	assert.Nil(t, placed)

	var partial *domainerrors.PartialOrderError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, createdOrder.ID, partial.OrderID, "the error must carry the real order id")
}

func TestCheckoutService_PlaceOrder_CartClearFailureIsNonFatal(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)
	address := testAddress(userID)

	m.cart.EXPECT().LoadCart(ctx, owner).Return(twoTeesAndAHoodie(owner), nil)
	m.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	m.order.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil)
	m.order.EXPECT().CreateOrderItems(ctx, mock.Anything).Return(nil)
	m.loyalty.EXPECT().AwardForOrder(ctx, userID, float64(7797)).Return(779, nil)

	m.cart.EXPECT().
		ClearCart(ctx, owner).
		Return(errors.New("delete failed"))

	m.email.EXPECT().Enqueue(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil)

	placed, err := service.PlaceOrder(ctx, userID, usecase.CheckoutInput{
		AddressID:     address.ID,
		PaymentMethod: entity.PaymentMethodCOD,
		Email:         "asha@example.com",
	})
	require.NoError(t, err, "a stale cart is an acceptable outcome, a lost order is not")
	assert.NotNil(t, placed)
}

func TestCheckoutService_PlaceOrder_AppliesCoupon(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)
	address := testAddress(userID)
	couponID := uuid.New()

	m.cart.EXPECT().LoadCart(ctx, owner).Return(twoTeesAndAHoodie(owner), nil)
	m.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)

	m.coupon.EXPECT().
		Validate(ctx, "WELCOME10", float64(7797), userID).
		Return(&usecase.CouponValidation{
			Coupon:         &entity.Coupon{ID: couponID, Code: "WELCOME10"},
			DiscountAmount: 500,
		}, nil)

	var createdOrder *entity.Order
	m.order.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			createdOrder = order
		}).
		Return(nil)
	m.order.EXPECT().CreateOrderItems(ctx, mock.Anything).Return(nil)

	m.coupon.EXPECT().
		Redeem(ctx, couponID, userID, mock.AnythingOfType("uuid.UUID"), float64(500)).
		Return(nil)

	m.loyalty.EXPECT().AwardForOrder(ctx, userID, float64(7297)).Return(729, nil)
	m.cart.EXPECT().ClearCart(ctx, owner).Return(nil)
	m.email.EXPECT().Enqueue(ctx, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishOrderPlaced(ctx, mock.Anything).Return(nil)

	placed, err := service.PlaceOrder(ctx, userID, usecase.CheckoutInput{
		AddressID:     address.ID,
		PaymentMethod: entity.PaymentMethodCOD,
		CouponCode:    "WELCOME10",
		Email:         "asha@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, float64(500), placed.Discount)
	assert.Equal(t, float64(7297), placed.TotalAmount)
	assert.Equal(t, float64(7297), createdOrder.TotalAmount)
}

func TestCheckoutService_PlaceOrder_InvalidCouponAbortsBeforeOrder(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)
	address := testAddress(userID)

	m.cart.EXPECT().LoadCart(ctx, owner).Return(twoTeesAndAHoodie(owner), nil)
	m.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)

	m.coupon.EXPECT().
		Validate(ctx, "EXPIRED", float64(7797), userID).
		Return(nil, domainerrors.ErrCouponExpired)

	placed, err := service.PlaceOrder(ctx, userID, usecase.CheckoutInput{
		AddressID:     address.ID,
		PaymentMethod: entity.PaymentMethodCOD,
		CouponCode:    "EXPIRED",
	})
	assert.Nil(t, placed)
	assert.Equal(t, domainerrors.ErrCouponExpired, err)
}

func TestCheckoutService_PlaceOrder_FreezesPriceReadAtCheckout(t *testing.T) {
	// Real cart service under the checkout service, so the order line goes
	// through the live product join instead of a canned cart.
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	cartService := NewCartService(CartServiceParams{
		CartRepo:    mockCartRepo,
		ProductRepo: mockProductRepo,
		GuestStore:  mockSvc.NewMockGuestCartStore(t),
		Logger:      newDiscardLogger(),
	})

	m := &checkoutMocks{
		coupon:    mockUC.NewMockCouponUsecase(t),
		loyalty:   mockUC.NewMockLoyaltyUsecase(t),
		address:   mockRepo.NewMockAddressRepository(t),
		order:     mockRepo.NewMockOrderRepository(t),
		email:     mockRepo.NewMockEmailQueueRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	service := NewCheckoutService(CheckoutServiceParams{
		CartUsecase:    cartService,
		CouponUsecase:  m.coupon,
		LoyaltyUsecase: m.loyalty,
		AddressRepo:    m.address,
		OrderRepo:      m.order,
		EmailRepo:      m.email,
		Publisher:      m.publisher,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	ctx := context.Background()
	userID := uuid.New()
	address := testAddress(userID)

	// The stored line still carries the snapshot written when the item was
	// added, at the old price. The catalog has moved on since.
	mockCartRepo.EXPECT().
		FindLinesByUser(ctx, userID).
		Return([]*entity.CartLine{
			{
				ID:        uuid.NewString(),
				ProductID: 7,
				Size:      "M",
				Quantity:  2,
				Product:   entity.ProductSnapshot{ID: 7, Name: "Oversized Tee", Price: 2199},
			},
		}, nil)
	mockProductRepo.EXPECT().
		FindProductsByIDs(ctx, []int64{7}).
		Return([]*entity.Product{testProduct(7, 2499)}, nil)

	m.address.EXPECT().FindAddressByID(ctx, address.ID).Return(address, nil)
	m.order.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	var createdItems []*entity.OrderItem
	m.order.EXPECT().
		CreateOrderItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).
		Run(func(_ context.Context, items []*entity.OrderItem) {
			createdItems = items
		}).
		Return(nil)

	m.loyalty.EXPECT().AwardForOrder(ctx, userID, float64(4998)).Return(499, nil)
	mockCartRepo.EXPECT().DeleteLinesByUser(ctx, userID).Return(nil)
	m.email.EXPECT().Enqueue(ctx, mock.AnythingOfType("*entity.EmailRequest")).Return(nil)
	m.publisher.EXPECT().PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).Return(nil)

	placed, err := service.PlaceOrder(ctx, userID, usecase.CheckoutInput{
		AddressID:     address.ID,
		PaymentMethod: entity.PaymentMethodCOD,
		Email:         "asha@example.com",
	})
	require.NoError(t, err)

	// The order freezes the price read at checkout, not the add-time snapshot.
	// Price moves after this point never touch the order.
	require.Len(t, createdItems, 1)
	assert.Equal(t, float64(2499), createdItems[0].Price)
	assert.Equal(t, float64(4998), placed.Subtotal)
	assert.Equal(t, float64(4998), placed.TotalAmount)
}

func TestCheckoutService_RepairOrder_ReplaysMissingItems(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)
	orderID := uuid.New()
	cart := twoTeesAndAHoodie(owner)

	order := &entity.Order{
		ID:           orderID,
		UserID:       userID,
		ContactEmail: "asha@example.com",
		TotalAmount:  7797,
		Status:       entity.OrderStatusPending,
		ShippingAddress: entity.ShippingAddress{
			FullName: "Asha Rao",
		},
	}

	m.order.EXPECT().FindOrderByID(ctx, orderID).Return(order, nil).Once()

	// One of the two cart pairs already made it in before the failure.
	m.order.EXPECT().
		FindItemsByOrder(ctx, orderID).
		Return([]*entity.OrderItem{
			{OrderID: orderID, ProductID: 7, Size: "M", Quantity: 2, Price: 2499},
		}, nil)

	m.cart.EXPECT().LoadCart(ctx, owner).Return(cart, nil)

	var replayed []*entity.OrderItem
	m.order.EXPECT().
		CreateOrderItems(ctx, mock.AnythingOfType("[]*entity.OrderItem")).
		Run(func(_ context.Context, items []*entity.OrderItem) {
			replayed = items
		}).
		Return(nil)

	m.cart.EXPECT().ClearCart(ctx, owner).Return(nil)

	// The aborted checkout never sent the confirmation; the repair owes it.
	m.email.EXPECT().
		Enqueue(ctx, mock.AnythingOfType("*entity.EmailRequest")).
		Run(func(_ context.Context, request *entity.EmailRequest) {
			assert.Equal(t, entity.EmailTypeOrderConfirmation, request.EmailType)
			assert.Equal(t, "asha@example.com", request.RecipientEmail)
			assert.Equal(t, "Asha Rao", request.RecipientName)
		}).
		Return(nil)

	m.order.EXPECT().FindOrderByID(ctx, orderID).Return(order, nil).Once()

	repaired, err := service.RepairOrder(ctx, userID, orderID)
	require.NoError(t, err)
	assert.NotNil(t, repaired)
	require.Len(t, replayed, 1)
	assert.Equal(t, int64(12), replayed[0].ProductID)
	assert.Equal(t, "L", replayed[0].Size)
}

func TestCheckoutService_RepairOrder_NothingMissingSendsNoEmail(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)
	orderID := uuid.New()
	cart := twoTeesAndAHoodie(owner)

	order := &entity.Order{
		ID:           orderID,
		UserID:       userID,
		ContactEmail: "asha@example.com",
		Status:       entity.OrderStatusPending,
	}

	m.order.EXPECT().FindOrderByID(ctx, orderID).Return(order, nil).Once()

	// Every cart pair is already persisted: a repeat repair.
	m.order.EXPECT().
		FindItemsByOrder(ctx, orderID).
		Return([]*entity.OrderItem{
			{OrderID: orderID, ProductID: 7, Size: "M", Quantity: 2, Price: 2499},
			{OrderID: orderID, ProductID: 12, Size: "L", Quantity: 1, Price: 2799},
		}, nil)

	m.cart.EXPECT().LoadCart(ctx, owner).Return(cart, nil)
	m.cart.EXPECT().ClearCart(ctx, owner).Return(nil)
	m.order.EXPECT().FindOrderByID(ctx, orderID).Return(order, nil).Once()

	// No CreateOrderItems and no Enqueue expectations: replaying nothing
	// must not insert items or double-send the confirmation.
	repaired, err := service.RepairOrder(ctx, userID, orderID)
	require.NoError(t, err)
	assert.NotNil(t, repaired)
}

func TestCheckoutService_RepairOrder_ForeignOrder(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	orderID := uuid.New()

	m.order.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New()}, nil)

	repaired, err := service.RepairOrder(ctx, uuid.New(), orderID)
	assert.Nil(t, repaired)
	assert.Equal(t, domainerrors.ErrOrderOwnershipViolation, err)
}

func TestCheckoutService_RepairOrder_NotFound(t *testing.T) {
	m, service := newCheckoutService(t)

	ctx := context.Background()
	orderID := uuid.New()

	m.order.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	repaired, err := service.RepairOrder(ctx, uuid.New(), orderID)
	assert.Nil(t, repaired)
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
}
