package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address lookup finds no row.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for saved delivery addresses.
type AddressRepository interface {
	// CreateAddress persists a new address and fills in the server-assigned
	// id and timestamps.
	CreateAddress(ctx context.Context, address *entity.UserAddress) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.UserAddress, error)

	// FindAddressesByUser retrieves all addresses for a user, default first.
	FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserAddress, error)

	// UpdateAddress updates an existing address record.
	UpdateAddress(ctx context.Context, address *entity.UserAddress) error

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id uuid.UUID) error

	// MarkDefault makes the given address the user's default, clearing the
	// flag on any previous default.
	MarkDefault(ctx context.Context, userID, addressID uuid.UUID) error
}
