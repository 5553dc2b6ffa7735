package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// CreateAddress persists a new address for the user.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.UserAddress) error {
	addressM := toAddressModel(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.UserAddress, error) {
	var addressM model.UserAddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by id")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByUser retrieves all addresses for a user, default first.
func (repo *addressRepository) FindAddressesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserAddress, error) {
	var addressModels []*model.UserAddressModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at DESC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user")
	}

	addresses := make([]*entity.UserAddress, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// UpdateAddress updates an existing address record.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.UserAddress) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserAddressModel{}).
		Where("id = ? AND user_id = ?", address.ID, address.UserID).
		Updates(map[string]interface{}{
			"full_name":     address.FullName,
			"phone":         address.Phone,
			"address_line1": address.AddressLine1,
			"address_line2": address.AddressLine2,
			"city":          address.City,
			"state":         address.State,
			"pincode":       address.Pincode,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserAddressModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// MarkDefault makes the given address the user's default. The clear and the
// set run in one transaction so the user never has two defaults.
func (repo *addressRepository) MarkDefault(ctx context.Context, userID, addressID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.UserAddressModel{}).
			Where("user_id = ? AND is_default = ?", userID, true).
			Update("is_default", false).Error; err != nil {
			return errors.Wrap(err, "failed to clear previous default address")
		}

		result := tx.Model(&model.UserAddressModel{}).
			Where("id = ? AND user_id = ?", addressID, userID).
			Update("is_default", true)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to mark default address")
		}
		if result.RowsAffected == 0 {
			return repository.ErrAddressNotFound
		}

		return nil
	})
	if err != nil {
		return err
	}

	return nil
}

// --- Mapper Functions ---

// toAddressModel converts a domain UserAddress to a GORM UserAddressModel.
func toAddressModel(address *entity.UserAddress) *model.UserAddressModel {
	return &model.UserAddressModel{
		ID:           address.ID,
		UserID:       address.UserID,
		FullName:     address.FullName,
		Phone:        address.Phone,
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		City:         address.City,
		State:        address.State,
		Pincode:      address.Pincode,
		IsDefault:    address.IsDefault,
	}
}

// toAddressDomain converts a GORM UserAddressModel to a domain UserAddress.
func toAddressDomain(data *model.UserAddressModel) *entity.UserAddress {
	if data == nil {
		return nil
	}

	return &entity.UserAddress{
		ID:           data.ID,
		UserID:       data.UserID,
		FullName:     data.FullName,
		Phone:        data.Phone,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		State:        data.State,
		Pincode:      data.Pincode,
		IsDefault:    data.IsDefault,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
