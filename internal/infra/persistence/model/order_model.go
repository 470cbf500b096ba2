package model

import "time"

// OrderModel is the stored form of an order, keyed by orderId.
type OrderModel struct {
	OrderID         string    `docstore:"orderId"`
	CustomerID      string    `docstore:"customerId"`
	OrderDate       time.Time `docstore:"orderDate"`
	Status          string    `docstore:"status"`
	TotalPrice      float64   `docstore:"totalPrice"`
	TotalItems      int       `docstore:"totalItems"`
	ShippingAddress string    `docstore:"shippingAddress"`
	PaymentMethod   string    `docstore:"paymentMethod"`
	CreatedAt       time.Time `docstore:"createdAt"`
	UpdatedAt       time.Time `docstore:"updatedAt"`
}

// OrderItemModel is the stored form of an order item, keyed by (orderId, productId).
type OrderItemModel struct {
	OrderID    string    `docstore:"orderId"`
	ProductID  string    `docstore:"productId"`
	Name       string    `docstore:"name"`
	Price      float64   `docstore:"price"`
	ImageURL   string    `docstore:"imageUrl"`
	Quantity   int       `docstore:"quantity"`
	TotalPrice float64   `docstore:"totalPrice"`
	CreatedAt  time.Time `docstore:"createdAt"`
	UpdatedAt  time.Time `docstore:"updatedAt"`
}

// CompositeKey returns the (orderId, productId) pair.
func (m *OrderItemModel) CompositeKey() [2]string {
	return [2]string{m.OrderID, m.ProductID}
}
