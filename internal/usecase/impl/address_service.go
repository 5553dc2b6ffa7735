package impl

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type addressService struct {
	addressRepo repository.AddressRepository
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	AddressRepo repository.AddressRepository
}

// NewAddressService creates a new address service instance
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		addressRepo: params.AddressRepo,
	}
}

// ListAddresses retrieves the user's saved addresses, default first
func (s *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.UserAddress, error) {
	addresses, err := s.addressRepo.FindAddressesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	return addresses, nil
}

// CreateAddress saves a new delivery address
func (s *addressService) CreateAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddressInput) (*entity.UserAddress, error) {
	address := &entity.UserAddress{
		ID:           uuid.New(),
		UserID:       userID,
		FullName:     input.FullName,
		Phone:        input.Phone,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		City:         input.City,
		State:        input.State,
		Pincode:      input.Pincode,
		IsDefault:    input.IsDefault,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to create address")
	}

	if input.IsDefault {
		if err := s.addressRepo.MarkDefault(ctx, userID, address.ID); err != nil {
			return nil, errors.Wrap(err, "failed to mark address as default")
		}
	}

	return address, nil
}

// UpdateAddress updates one of the user's addresses
func (s *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.AddressInput) (*entity.UserAddress, error) {
	address, err := s.findOwnedAddress(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	address.FullName = input.FullName
	address.Phone = input.Phone
	address.AddressLine1 = input.AddressLine1
	address.AddressLine2 = input.AddressLine2
	address.City = input.City
	address.State = input.State
	address.Pincode = input.Pincode
	address.UpdatedAt = time.Now()

	if err := s.addressRepo.UpdateAddress(ctx, address); err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	if input.IsDefault && !address.IsDefault {
		if err := s.addressRepo.MarkDefault(ctx, userID, addressID); err != nil {
			return nil, errors.Wrap(err, "failed to mark address as default")
		}
		address.IsDefault = true
	}

	return address, nil
}

// DeleteAddress removes one of the user's addresses. Placed orders are
// unaffected: they embed an address snapshot, not a reference.
func (s *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	if _, err := s.findOwnedAddress(ctx, userID, addressID); err != nil {
		return err
	}

	if err := s.addressRepo.DeleteAddress(ctx, addressID); err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	return nil
}

// SetDefaultAddress makes the given address the user's default
func (s *addressService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	if _, err := s.findOwnedAddress(ctx, userID, addressID); err != nil {
		return err
	}

	if err := s.addressRepo.MarkDefault(ctx, userID, addressID); err != nil {
		return errors.Wrap(err, "failed to mark address as default")
	}

	return nil
}

// findOwnedAddress loads an address and enforces ownership.
func (s *addressService) findOwnedAddress(ctx context.Context, userID, addressID uuid.UUID) (*entity.UserAddress, error) {
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
