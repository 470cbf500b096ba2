package entity

import "time"

// Order is placed from a cart. Its totals are copied from the cart once and
// never re-derived.
type Order struct {
	OrderID         string      `json:"orderId"`
	CustomerID      string      `json:"customerId"`
	OrderDate       time.Time   `json:"orderDate"`
	Status          OrderStatus `json:"status"`
	TotalPrice      float64     `json:"totalPrice"`
	TotalItems      int         `json:"totalItems"`
	ShippingAddress string      `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// OrderItem is a frozen copy of a cart item, keyed by (OrderID, ProductID).
type OrderItem struct {
	OrderID    string    `json:"orderId"`
	ProductID  string    `json:"productId"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	ImageURL   string    `json:"imageUrl"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewOrderItem copies a cart item into the order.
func NewOrderItem(orderID string, item *CartItem, now time.Time) *OrderItem {
	return &OrderItem{
		OrderID:    orderID,
		ProductID:  item.ProductID,
		Name:       item.Name,
		Price:      item.Price,
		ImageURL:   item.ImageURL,
		Quantity:   item.Quantity,
		TotalPrice: item.TotalPrice,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
