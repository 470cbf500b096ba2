package repository

import (
	"context"

	"shopcart/internal/domain/entity"
)

// OrderRepository defines the interface for order data persistence
type OrderRepository interface {
	// FindByID returns errors.ErrOrderNotFound when no order has the ID
	FindByID(ctx context.Context, orderID string) (*entity.Order, error)
	FindByCustomer(ctx context.Context, customerID string) ([]*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	Delete(ctx context.Context, orderID string) error
}

// OrderItemRepository defines the interface for order item persistence.
// Items are keyed by the (orderID, productID) pair and never modified.
type OrderItemRepository interface {
	FindByOrder(ctx context.Context, orderID string) ([]*entity.OrderItem, error)
	CreateBatch(ctx context.Context, items []*entity.OrderItem) error
	DeleteBatch(ctx context.Context, items []*entity.OrderItem) error
}
