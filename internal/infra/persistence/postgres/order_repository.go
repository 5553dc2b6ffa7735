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

const orderItemBatchSize = 100

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order row. Items carried on the entity are not
// written here; checkout sequences the item insert as a separate call.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := toOrderModel(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// CreateOrderItems persists the given items in one batched insert. The unique
// index on (order_id, product_id, size) rejects replays of rows that already
// landed; those surface as a unique violation for the caller's repair path.
func (repo *orderRepository) CreateOrderItems(ctx context.Context, items []*entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.OrderItemModel, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, toOrderItemModel(item))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(itemModels, orderItemBatchSize).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "order item already recorded")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	return nil
}

// FindItemsByOrder retrieves the items already persisted for an order.
func (repo *orderRepository) FindItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	var itemModels []*model.OrderItemModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find order items")
	}

	items := make([]*entity.OrderItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toOrderItemDomain(itemM))
	}

	return items, nil
}

// FindOrderByID retrieves an order with its items joined in.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	order := toOrderDomain(&orderM)

	items, err := repo.FindItemsByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// FindOrdersByUser retrieves the user's orders, newest first, items joined.
func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	if len(orderModels) == 0 {
		return []*entity.Order{}, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(orderModels))
	for _, orderM := range orderModels {
		orderIDs = append(orderIDs, orderM.ID)
	}

	var itemModels []*model.OrderItemModel
	if err := repo.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find items for orders")
	}

	itemsByOrder := make(map[uuid.UUID][]*entity.OrderItem, len(orderModels))
	for _, itemM := range itemModels {
		itemsByOrder[itemM.OrderID] = append(itemsByOrder[itemM.OrderID], toOrderItemDomain(itemM))
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order := toOrderDomain(orderM)
		order.Items = itemsByOrder[orderM.ID]
		orders = append(orders, order)
	}

	return orders, nil
}

// UpdateOrderStatus sets the fulfillment status of an order.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdatePaymentStatus sets the settlement state of an order's payment.
func (repo *orderRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("payment_status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderModel converts a domain Order entity to a GORM OrderModel.
func toOrderModel(order *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:           order.ID,
		UserID:       order.UserID,
		ContactEmail: order.ContactEmail,
		TotalAmount:  order.TotalAmount,
		Status:       string(order.Status),
		ShippingAddress: model.ShippingAddressData{
			FullName:     order.ShippingAddress.FullName,
			Phone:        order.ShippingAddress.Phone,
			AddressLine1: order.ShippingAddress.AddressLine1,
			AddressLine2: order.ShippingAddress.AddressLine2,
			City:         order.ShippingAddress.City,
			State:        order.ShippingAddress.State,
			Pincode:      order.ShippingAddress.Pincode,
		},
		PaymentMethod: string(order.PaymentMethod),
		PaymentStatus: string(order.PaymentStatus),
	}
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:           data.ID,
		UserID:       data.UserID,
		ContactEmail: data.ContactEmail,
		TotalAmount:  data.TotalAmount,
		Status:       entity.OrderStatus(data.Status),
		ShippingAddress: entity.ShippingAddress{
			FullName:     data.ShippingAddress.FullName,
			Phone:        data.ShippingAddress.Phone,
			AddressLine1: data.ShippingAddress.AddressLine1,
			AddressLine2: data.ShippingAddress.AddressLine2,
			City:         data.ShippingAddress.City,
			State:        data.ShippingAddress.State,
			Pincode:      data.ShippingAddress.Pincode,
		},
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		PaymentStatus: entity.PaymentStatus(data.PaymentStatus),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// toOrderItemModel converts a domain OrderItem to a GORM OrderItemModel.
func toOrderItemModel(item *entity.OrderItem) *model.OrderItemModel {
	return &model.OrderItemModel{
		ID:        item.ID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Size:      item.Size,
		Quantity:  item.Quantity,
		Price:     item.Price,
	}
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Size:      data.Size,
		Quantity:  data.Quantity,
		Price:     data.Price,
		CreatedAt: data.CreatedAt,
	}
}
