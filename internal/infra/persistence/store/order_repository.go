package store

import (
	"context"

	"shopcart/internal/domain/constants"
	"shopcart/internal/domain/entity"
	domainerrors "shopcart/internal/domain/errors"
	"shopcart/internal/domain/repository"
	"shopcart/internal/errors"
	"shopcart/internal/infra/persistence/model"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	coll *Collection[model.OrderModel]
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(s *Store) repository.OrderRepository {
	return &orderRepository{coll: s.Orders}
}

func (repo *orderRepository) FindByID(ctx context.Context, orderID string) (*entity.Order, error) {
	doc := &model.OrderModel{OrderID: orderID}
	if err := repo.coll.Get(ctx, doc); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, err
	}

	return toOrderDomain(doc), nil
}

func (repo *orderRepository) FindByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error) {
	docs, err := repo.coll.Query(ctx, constants.IndexCustomer, "customerId", customerID)
	if err != nil {
		return nil, err
	}

	return mapSlice(docs, toOrderDomain), nil
}

func (repo *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	docs, err := repo.coll.Scan(ctx)
	if err != nil {
		return nil, err
	}

	return mapSlice(docs, toOrderDomain), nil
}

func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return repo.coll.Put(ctx, fromOrderDomain(order))
}

func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return repo.coll.Update(ctx, fromOrderDomain(order))
}

func (repo *orderRepository) Delete(ctx context.Context, orderID string) error {
	return repo.coll.Delete(ctx, &model.OrderModel{OrderID: orderID})
}

// orderItemRepository implements the repository.OrderItemRepository interface.
type orderItemRepository struct {
	coll *Collection[model.OrderItemModel]
}

// NewOrderItemRepository is the constructor for orderItemRepository.
func NewOrderItemRepository(s *Store) repository.OrderItemRepository {
	return &orderItemRepository{coll: s.OrderItems}
}

func (repo *orderItemRepository) FindByOrder(ctx context.Context, orderID string) ([]*entity.OrderItem, error) {
	docs, err := repo.coll.Query(ctx, constants.IndexOrder, "orderId", orderID)
	if err != nil {
		return nil, err
	}

	return mapSlice(docs, toOrderItemDomain), nil
}

func (repo *orderItemRepository) CreateBatch(ctx context.Context, items []*entity.OrderItem) error {
	return repo.coll.BatchPut(ctx, mapSlice(items, fromOrderItemDomain))
}

func (repo *orderItemRepository) DeleteBatch(ctx context.Context, items []*entity.OrderItem) error {
	return repo.coll.BatchDelete(ctx, mapSlice(items, fromOrderItemDomain))
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		OrderID:         data.OrderID,
		CustomerID:      data.CustomerID,
		OrderDate:       data.OrderDate,
		Status:          entity.OrderStatus(data.Status),
		TotalPrice:      data.TotalPrice,
		TotalItems:      data.TotalItems,
		ShippingAddress: data.ShippingAddress,
		PaymentMethod:   data.PaymentMethod,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		OrderID:         data.OrderID,
		CustomerID:      data.CustomerID,
		OrderDate:       data.OrderDate,
		Status:          data.Status.String(),
		TotalPrice:      data.TotalPrice,
		TotalItems:      data.TotalItems,
		ShippingAddress: data.ShippingAddress,
		PaymentMethod:   data.PaymentMethod,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		OrderID:    data.OrderID,
		ProductID:  data.ProductID,
		Name:       data.Name,
		Price:      data.Price,
		ImageURL:   data.ImageURL,
		Quantity:   data.Quantity,
		TotalPrice: data.TotalPrice,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		OrderID:    data.OrderID,
		ProductID:  data.ProductID,
		Name:       data.Name,
		Price:      data.Price,
		ImageURL:   data.ImageURL,
		Quantity:   data.Quantity,
		TotalPrice: data.TotalPrice,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
