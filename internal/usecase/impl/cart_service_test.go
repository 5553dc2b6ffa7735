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
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartService(t *testing.T) (*mockRepo.MockCartRepository, *mockRepo.MockProductRepository, *mockSvc.MockGuestCartStore, *cartService) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockStore := mockSvc.NewMockGuestCartStore(t)
	service := NewCartService(CartServiceParams{
		CartRepo:    mockCartRepo,
		ProductRepo: mockProductRepo,
		GuestStore:  mockStore,
		Logger:      newDiscardLogger(),
	})

	return mockCartRepo, mockProductRepo, mockStore, service.(*cartService)
}

func testProduct(id int64, price float64) *entity.Product {
	return &entity.Product{
		ID:             id,
		Name:           "Oversized Tee",
		Price:          price,
		ThumbnailURL:   "https://cdn.example.com/tee.jpg",
		AvailableSizes: []string{"S", "M", "L"},
		Category:       "tshirts",
	}
}

func TestCartService_AddLine_NewLine(t *testing.T) {
	mockCartRepo, mockProductRepo, _, service := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)
	product := testProduct(7, 2499)

	mockProductRepo.EXPECT().
		FindProductByID(ctx, int64(7)).
		Return(product, nil)

	mockCartRepo.EXPECT().
		FindLineByProductAndSize(ctx, userID, int64(7), "M").
		Return(nil, repository.ErrCartLineNotFound)

	mockCartRepo.EXPECT().
		CreateLine(ctx, userID, mock.AnythingOfType("*entity.CartLine")).
		Return(nil)

	mockCartRepo.EXPECT().
		FindLinesByUser(ctx, userID).
		Return([]*entity.CartLine{
			{ID: uuid.NewString(), ProductID: 7, Size: "M", Quantity: 2},
		}, nil)

	mockProductRepo.EXPECT().
		FindProductsByIDs(ctx, []int64{7}).
		Return([]*entity.Product{product}, nil)

	cart, err := service.AddLine(ctx, owner, 7, "M", 2)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, float64(2499), cart.Lines[0].Product.Price)
	assert.Equal(t, float64(4998), cart.TotalPrice())
}

func TestCartService_AddLine_IncrementsExistingPair(t *testing.T) {
	mockCartRepo, mockProductRepo, _, service := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)
	product := testProduct(7, 2499)
	lineID := uuid.NewString()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, int64(7)).
		Return(product, nil)

	mockCartRepo.EXPECT().
		FindLineByProductAndSize(ctx, userID, int64(7), "M").
		Return(&entity.CartLine{ID: lineID, ProductID: 7, Size: "M", Quantity: 2}, nil)

	// Same (product, size) pair increments; no second line appears.
	mockCartRepo.EXPECT().
		UpdateLineQuantity(ctx, userID, lineID, 3).
		Return(nil)

	mockCartRepo.EXPECT().
		FindLinesByUser(ctx, userID).
		Return([]*entity.CartLine{
			{ID: lineID, ProductID: 7, Size: "M", Quantity: 3},
		}, nil)

	mockProductRepo.EXPECT().
		FindProductsByIDs(ctx, []int64{7}).
		Return([]*entity.Product{product}, nil)

	cart, err := service.AddLine(ctx, owner, 7, "M", 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
}

func TestCartService_AddLine_SameProductDifferentSize(t *testing.T) {
	mockCartRepo, mockProductRepo, _, service := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	owner := entity.AuthenticatedOwner(userID)
	product := testProduct(7, 2499)

	mockProductRepo.EXPECT().
		FindProductByID(ctx, int64(7)).
		Return(product, nil)

	mockCartRepo.EXPECT().
		FindLineByProductAndSize(ctx, userID, int64(7), "L").
		Return(nil, repository.ErrCartLineNotFound)

	mockCartRepo.EXPECT().
		CreateLine(ctx, userID, mock.AnythingOfType("*entity.CartLine")).
		Return(nil)

	mockCartRepo.EXPECT().
		FindLinesByUser(ctx, userID).
		Return([]*entity.CartLine{
			{ID: uuid.NewString(), ProductID: 7, Size: "M", Quantity: 2},
			{ID: uuid.NewString(), ProductID: 7, Size: "L", Quantity: 1},
		}, nil)

	mockProductRepo.EXPECT().
		FindProductsByIDs(ctx, []int64{7, 7}).
		Return([]*entity.Product{product}, nil)

	cart, err := service.AddLine(ctx, owner, 7, "L", 1)
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2)
	assert.Equal(t, 3, cart.TotalItems())
}

func TestCartService_AddLine_ProductNotFound(t *testing.T) {
	_, mockProductRepo, _, service := newCartService(t)

	ctx := context.Background()
	owner := entity.AuthenticatedOwner(uuid.New())

	mockProductRepo.EXPECT().
		FindProductByID(ctx, int64(404)).
		Return(nil, repository.ErrProductNotFound)

	cart, err := service.AddLine(ctx, owner, 404, "M", 1)
	assert.Nil(t, cart)
	assert.Equal(t, domainerrors.ErrProductNotFound, err)
}

func TestCartService_AddLine_InvalidQuantity(t *testing.T) {
	_, _, _, service := newCartService(t)

	cart, err := service.AddLine(context.Background(), entity.AuthenticatedOwner(uuid.New()), 7, "M", 0)
	assert.Nil(t, cart)
	assert.Equal(t, domainerrors.ErrInvalidQuantity, err)
}

func TestCartService_LoadCart_DegradesToEmptyOnError(t *testing.T) {
	mockCartRepo, _, _, service := newCartService(t)

	ctx := context.Background()
	owner := entity.AuthenticatedOwner(uuid.New())

	mockCartRepo.EXPECT().
		FindLinesByUser(ctx, owner.UserID()).
		Return(nil, errors.New("connection refused"))

	cart, err := service.LoadCart(ctx, owner)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_LoadCart_DropsVanishedProducts(t *testing.T) {
	mockCartRepo, mockProductRepo, _, service := newCartService(t)

	ctx := context.Background()
	owner := entity.AuthenticatedOwner(uuid.New())
	product := testProduct(7, 2499)

	mockCartRepo.EXPECT().
		FindLinesByUser(ctx, owner.UserID()).
		Return([]*entity.CartLine{
			{ID: uuid.NewString(), ProductID: 7, Size: "M", Quantity: 1},
			{ID: uuid.NewString(), ProductID: 99, Size: "S", Quantity: 1},
		}, nil)

	mockProductRepo.EXPECT().
		FindProductsByIDs(ctx, []int64{7, 99}).
		Return([]*entity.Product{product}, nil)

	cart, err := service.LoadCart(ctx, owner)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(7), cart.Lines[0].ProductID)
}

func TestCartService_UpdateQuantity_BelowOneIsNoOp(t *testing.T) {
	mockCartRepo, _, _, service := newCartService(t)

	ctx := context.Background()
	owner := entity.AuthenticatedOwner(uuid.New())

	// No UpdateLineQuantity expectation: the write never happens.
	mockCartRepo.EXPECT().
		FindLinesByUser(ctx, owner.UserID()).
		Return([]*entity.CartLine{}, nil)

	cart, err := service.UpdateQuantity(ctx, owner, uuid.NewString(), 0)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_UpdateQuantity_UnknownLineIsNoOp(t *testing.T) {
	mockCartRepo, _, _, service := newCartService(t)

	ctx := context.Background()
	owner := entity.AuthenticatedOwner(uuid.New())
	lineID := uuid.NewString()

	// The update is owner-scoped in SQL; a foreign or unknown id matches no
	// row and the repository reports success.
	mockCartRepo.EXPECT().
		UpdateLineQuantity(ctx, owner.UserID(), lineID, 5).
		Return(nil)

	mockCartRepo.EXPECT().
		FindLinesByUser(ctx, owner.UserID()).
		Return([]*entity.CartLine{}, nil)

	cart, err := service.UpdateQuantity(ctx, owner, lineID, 5)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_ClearCart_Idempotent(t *testing.T) {
	mockCartRepo, _, _, service := newCartService(t)

	ctx := context.Background()
	owner := entity.AuthenticatedOwner(uuid.New())

	mockCartRepo.EXPECT().
		DeleteLinesByUser(ctx, owner.UserID()).
		Return(nil).
		Twice()

	require.NoError(t, service.ClearCart(ctx, owner))
	require.NoError(t, service.ClearCart(ctx, owner))
}

func TestCartService_GuestAddLine_MergesPair(t *testing.T) {
	_, mockProductRepo, mockStore, service := newCartService(t)

	ctx := context.Background()
	owner := entity.GuestOwner("sess-abc")
	product := testProduct(7, 2499)

	existing := []*entity.CartLine{
		{ID: entity.NewGuestLineID(), ProductID: 7, Size: "M", Quantity: 1, Product: product.Snapshot()},
	}

	mockProductRepo.EXPECT().
		FindProductByID(ctx, int64(7)).
		Return(product, nil)

	mockStore.EXPECT().
		Load(ctx, "sess-abc").
		Return(existing, nil).
		Twice()

	var saved []*entity.CartLine
	mockStore.EXPECT().
		Save(ctx, "sess-abc", mock.AnythingOfType("[]*entity.CartLine")).
		Run(func(_ context.Context, _ string, lines []*entity.CartLine) {
			saved = lines
		}).
		Return(nil)

	cart, err := service.AddLine(ctx, owner, 7, "M", 2)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, 3, saved[0].Quantity)
	assert.NotNil(t, cart)
}

func TestCartService_GuestRemoveLine_MissingIDIsNoOp(t *testing.T) {
	_, _, mockStore, service := newCartService(t)

	ctx := context.Background()
	owner := entity.GuestOwner("sess-abc")

	// Nothing matched, so nothing is written back.
	mockStore.EXPECT().
		Load(ctx, "sess-abc").
		Return([]*entity.CartLine{}, nil).
		Twice()

	cart, err := service.RemoveLine(ctx, owner, "guest-missing")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestCartService_MergeGuestCart_SumsQuantities(t *testing.T) {
	mockCartRepo, mockProductRepo, mockStore, service := newCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	product := testProduct(7, 2499)
	lineID := uuid.NewString()

	mockStore.EXPECT().
		Load(ctx, "sess-abc").
		Return([]*entity.CartLine{
			{ID: entity.NewGuestLineID(), ProductID: 7, Size: "M", Quantity: 2, Product: product.Snapshot()},
		}, nil)

	mockProductRepo.EXPECT().
		FindProductByID(ctx, int64(7)).
		Return(product, nil)

	mockCartRepo.EXPECT().
		FindLineByProductAndSize(ctx, userID, int64(7), "M").
		Return(&entity.CartLine{ID: lineID, ProductID: 7, Size: "M", Quantity: 1}, nil)

	mockCartRepo.EXPECT().
		UpdateLineQuantity(ctx, userID, lineID, 3).
		Return(nil)

	mockStore.EXPECT().
		Clear(ctx, "sess-abc").
		Return(nil)

	mockCartRepo.EXPECT().
		FindLinesByUser(ctx, userID).
		Return([]*entity.CartLine{
			{ID: lineID, ProductID: 7, Size: "M", Quantity: 3},
		}, nil)

	mockProductRepo.EXPECT().
		FindProductsByIDs(ctx, []int64{7}).
		Return([]*entity.Product{product}, nil)

	cart, err := service.MergeGuestCart(ctx, "sess-abc", userID)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)
}
