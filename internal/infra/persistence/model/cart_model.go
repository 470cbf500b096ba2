package model

import "time"

// CompositeKeyer is implemented by documents keyed by a partition and sort field pair.
type CompositeKeyer interface {
	CompositeKey() [2]string
}

// CartModel is the stored form of a cart, keyed by cartId.
type CartModel struct {
	CartID     string    `docstore:"cartId"`
	CustomerID string    `docstore:"customerId"`
	TotalPrice float64   `docstore:"totalPrice"`
	TotalItems int       `docstore:"totalItems"`
	CreatedAt  time.Time `docstore:"createdAt"`
	UpdatedAt  time.Time `docstore:"updatedAt"`
}

// CartItemModel is the stored form of a cart item, keyed by (cartId, productId).
type CartItemModel struct {
	CartID     string    `docstore:"cartId"`
	ProductID  string    `docstore:"productId"`
	Name       string    `docstore:"name"`
	Price      float64   `docstore:"price"`
	ImageURL   string    `docstore:"imageUrl"`
	Quantity   int       `docstore:"quantity"`
	TotalPrice float64   `docstore:"totalPrice"`
	CreatedAt  time.Time `docstore:"createdAt"`
	UpdatedAt  time.Time `docstore:"updatedAt"`
}

// CompositeKey returns the (cartId, productId) pair.
func (m *CartItemModel) CompositeKey() [2]string {
	return [2]string{m.CartID, m.ProductID}
}
