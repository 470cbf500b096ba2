package usecase

import (
	"context"

	"shopcart/internal/domain/entity"
)

// CreateOrderInput defines the data required to place an order from a cart.
type CreateOrderInput struct {
	CartID          string
	CustomerID      string
	ShippingAddress string
	PaymentMethod   string
}

// OrderView is an order together with its items.
type OrderView struct {
	Order *entity.Order       `json:"order"`
	Items []*entity.OrderItem `json:"items"`
}

// OrderUsecase defines the order operations.
type OrderUsecase interface {
	// CreateOrder turns a cart into an order. The writes are sequential and
	// independent: a failure after the order is stored leaves stock and cart
	// cleanup undone.
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderView, error)
	GetOrder(ctx context.Context, orderID string) (*OrderView, error)
	// ListOrders filters by customer when customerID is set, otherwise scans.
	ListOrders(ctx context.Context, customerID string) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, status string) (*OrderView, error)
	DeleteOrder(ctx context.Context, orderID string) error
}
