// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shopcart/internal/domain/entity"
)

// --- Input DTOs ---

// AddCartItemInput defines the data required to add a product to a cart.
type AddCartItemInput struct {
	CartID    string
	ProductID string
	Quantity  int
}

// UpdateCartItemInput defines the new quantity of an existing cart line.
type UpdateCartItemInput struct {
	CartID    string
	ProductID string
	Quantity  int
}

// --- Output DTOs ---

// CartView is a cart together with all of its items.
type CartView struct {
	Cart  *entity.Cart       `json:"cart"`
	Items []*entity.CartItem `json:"items"`
}

// CartUsecase defines the cart operations. Every mutation re-derives the
// cart totals from the full set of its items before persisting the cart.
type CartUsecase interface {
	// CreateCart returns the customer's existing cart when there is one;
	// created reports whether a new cart was written.
	CreateCart(ctx context.Context, customerID string) (view *CartView, created bool, err error)
	GetCart(ctx context.Context, cartID string) (*CartView, error)
	GetCartByCustomer(ctx context.Context, customerID string) (*CartView, error)
	AddItem(ctx context.Context, input AddCartItemInput) (*CartView, error)
	UpdateItemQuantity(ctx context.Context, input UpdateCartItemInput) (*CartView, error)
	RemoveItem(ctx context.Context, cartID, productID string) (*CartView, error)
	ClearCart(ctx context.Context, cartID string) (*CartView, error)
}
