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

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindLinesByUser retrieves all cart lines owned by the user.
func (repo *cartRepository) FindLinesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartLine, error) {
	var itemModels []*model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cart lines by user")
	}

	lines := make([]*entity.CartLine, 0, len(itemModels))
	for _, itemM := range itemModels {
		lines = append(lines, toCartLineDomain(itemM))
	}

	return lines, nil
}

// FindLineByProductAndSize retrieves the user's line for (productID, size).
func (repo *cartRepository) FindLineByProductAndSize(ctx context.Context, userID uuid.UUID, productID int64, size string) (*entity.CartLine, error) {
	var itemM model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND size = ?", userID, productID, size).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartLineNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line by product and size")
	}

	return toCartLineDomain(&itemM), nil
}

// CreateLine persists a new cart line for the user.
func (repo *cartRepository) CreateLine(ctx context.Context, userID uuid.UUID, line *entity.CartLine) error {
	itemM := &model.CartItemModel{
		UserID:    userID,
		ProductID: line.ProductID,
		Size:      line.Size,
		Quantity:  line.Quantity,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		// Two concurrent first-adds of the same pair race on the unique
		// index; the loser surfaces here.
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "cart line already exists for this product and size")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("cart line references a missing product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart line")
	}

	// Update the entity with generated values
	line.ID = itemM.ID.String()
	line.CreatedAt = itemM.CreatedAt
	line.UpdatedAt = itemM.UpdatedAt

	return nil
}

// UpdateLineQuantity sets the quantity of the user's line. The statement is
// owner-scoped; an id belonging to another user matches no row, and matching
// no row is not an error.
func (repo *cartRepository) UpdateLineQuantity(ctx context.Context, userID uuid.UUID, lineID string, quantity int) error {
	id, err := uuid.Parse(lineID)
	if err != nil {
		// Not a persisted line id; nothing can match.
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("quantity", quantity).Error; err != nil {
		return errors.Wrap(err, "failed to update cart line quantity")
	}

	return nil
}

// DeleteLine removes the user's line by id. Deleting a missing line is a no-op.
func (repo *cartRepository) DeleteLine(ctx context.Context, userID uuid.UUID, lineID string) error {
	id, err := uuid.Parse(lineID)
	if err != nil {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart line")
	}

	return nil
}

// DeleteLinesByUser removes every cart line owned by the user.
func (repo *cartRepository) DeleteLinesByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart lines by user")
	}

	return nil
}

// --- Mapper Functions ---

// toCartLineDomain converts a GORM CartItemModel to a domain CartLine entity.
// The product snapshot is left empty; callers join it in separately.
func toCartLineDomain(data *model.CartItemModel) *entity.CartLine {
	if data == nil {
		return nil
	}

	return &entity.CartLine{
		ID:        data.ID.String(),
		ProductID: data.ProductID,
		Size:      data.Size,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
