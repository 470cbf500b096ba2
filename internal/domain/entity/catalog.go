package entity

import "time"

// Product is a sellable item. Stock never drops below zero.
type Product struct {
	ProductID   string    `json:"productId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"imageUrl"`
	CategoryID  string    `json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasStock reports whether quantity units can be taken from the product.
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}

// DecrementStock removes quantity units, clamping at zero.
func (p *Product) DecrementStock(quantity int) {
	p.Stock -= quantity
	if p.Stock < 0 {
		p.Stock = 0
	}
}

// Category groups products.
type Category struct {
	CategoryID  string    `json:"categoryId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
