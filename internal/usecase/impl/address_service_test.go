package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAddressService(t *testing.T) (*mockRepo.MockAddressRepository, *addressService) {
	mockAddressRepo := mockRepo.NewMockAddressRepository(t)
	service := NewAddressService(AddressServiceParams{
		AddressRepo: mockAddressRepo,
	})

	return mockAddressRepo, service.(*addressService)
}

func addressInput() *usecase.AddressInput {
	return &usecase.AddressInput{
		FullName:     "Asha Rao",
		Phone:        "9876543210",
		AddressLine1: "14 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
	}
}

func TestAddressService_CreateAddress(t *testing.T) {
	mockAddressRepo, service := newAddressService(t)

	ctx := context.Background()
	userID := uuid.New()

	mockAddressRepo.EXPECT().
		CreateAddress(ctx, mock.AnythingOfType("*entity.UserAddress")).
		Return(nil)

	address, err := service.CreateAddress(ctx, userID, addressInput())
	require.NoError(t, err)
	assert.Equal(t, userID, address.UserID)
	assert.Equal(t, "560001", address.Pincode)
	assert.False(t, address.IsDefault)
}

func TestAddressService_CreateAddress_MarksDefault(t *testing.T) {
	mockAddressRepo, service := newAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := addressInput()
	input.IsDefault = true

	mockAddressRepo.EXPECT().
		CreateAddress(ctx, mock.AnythingOfType("*entity.UserAddress")).
		Return(nil)

	mockAddressRepo.EXPECT().
		MarkDefault(ctx, userID, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	address, err := service.CreateAddress(ctx, userID, input)
	require.NoError(t, err)
	assert.True(t, address.IsDefault)
}

func TestAddressService_UpdateAddress_ForeignAddress(t *testing.T) {
	mockAddressRepo, service := newAddressService(t)

	ctx := context.Background()
	addressID := uuid.New()

	mockAddressRepo.EXPECT().
		FindAddressByID(ctx, addressID).
		Return(&entity.UserAddress{ID: addressID, UserID: uuid.New()}, nil)

	address, err := service.UpdateAddress(ctx, uuid.New(), addressID, addressInput())
	assert.Nil(t, address)
	assert.Equal(t, domainerrors.ErrAddressOwnershipViolation, err)
}

func TestAddressService_DeleteAddress_NotFound(t *testing.T) {
	mockAddressRepo, service := newAddressService(t)

	ctx := context.Background()
	addressID := uuid.New()

	mockAddressRepo.EXPECT().
		FindAddressByID(ctx, addressID).
		Return(nil, repository.ErrAddressNotFound)

	err := service.DeleteAddress(ctx, uuid.New(), addressID)
	assert.Equal(t, domainerrors.ErrAddressNotFound, err)
}

func TestAddressService_SetDefaultAddress(t *testing.T) {
	mockAddressRepo, service := newAddressService(t)

	ctx := context.Background()
	userID := uuid.New()
	addressID := uuid.New()

	mockAddressRepo.EXPECT().
		FindAddressByID(ctx, addressID).
		Return(&entity.UserAddress{ID: addressID, UserID: userID}, nil)

	mockAddressRepo.EXPECT().
		MarkDefault(ctx, userID, addressID).
		Return(nil)

	require.NoError(t, service.SetDefaultAddress(ctx, userID, addressID))
}
