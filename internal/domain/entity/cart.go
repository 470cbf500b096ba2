package entity

import "time"

// Cart is a customer's shopping cart. TotalPrice and TotalItems are derived
// from the cart's items and are recomputed after every mutation.
type Cart struct {
	CartID     string    `json:"cartId"`
	CustomerID string    `json:"customerId"`
	TotalPrice float64   `json:"totalPrice"`
	TotalItems int       `json:"totalItems"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewCart returns an empty cart for the customer.
func NewCart(cartID, customerID string, now time.Time) *Cart {
	return &Cart{
		CartID:     cartID,
		CustomerID: customerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Recalculate sets the cart totals to the quantity-weighted sums over items.
func (c *Cart) Recalculate(items []*CartItem, now time.Time) {
	var (
		totalPrice float64
		totalItems int
	)
	for _, item := range items {
		totalPrice += item.Price * float64(item.Quantity)
		totalItems += item.Quantity
	}

	c.TotalPrice = totalPrice
	c.TotalItems = totalItems
	c.UpdatedAt = now
}

// Reset zeroes the cart totals.
func (c *Cart) Reset(now time.Time) {
	c.TotalPrice = 0
	c.TotalItems = 0
	c.UpdatedAt = now
}

// IsOwnedBy reports whether the cart belongs to the customer.
func (c *Cart) IsOwnedBy(customerID string) bool {
	return c.CustomerID == customerID
}

// CartItem is one product line in a cart, keyed by (CartID, ProductID).
// Name, Price and ImageURL are a snapshot of the product when first added.
type CartItem struct {
	CartID     string    `json:"cartId"`
	ProductID  string    `json:"productId"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	ImageURL   string    `json:"imageUrl"`
	Quantity   int       `json:"quantity"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewCartItem snapshots product into a new line of the cart.
func NewCartItem(cartID string, product *Product, quantity int, now time.Time) *CartItem {
	return &CartItem{
		CartID:     cartID,
		ProductID:  product.ProductID,
		Name:       product.Name,
		Price:      product.Price,
		ImageURL:   product.ImageURL,
		Quantity:   quantity,
		TotalPrice: product.Price * float64(quantity),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SetQuantity replaces the quantity and recomputes the line total.
func (i *CartItem) SetQuantity(quantity int, now time.Time) {
	i.Quantity = quantity
	i.TotalPrice = i.Price * float64(quantity)
	i.UpdatedAt = now
}

// AddQuantity increments the quantity and recomputes the line total.
func (i *CartItem) AddQuantity(quantity int, now time.Time) {
	i.SetQuantity(i.Quantity+quantity, now)
}
