package repository

import (
	"context"

	"shopcart/internal/domain/entity"
)

// CartRepository defines the interface for cart data persistence
type CartRepository interface {
	// FindByID returns errors.ErrCartNotFound when no cart has the ID
	FindByID(ctx context.Context, cartID string) (*entity.Cart, error)
	// FindByCustomer queries the customer index. Nothing prevents several
	// carts per customer, so callers pick one.
	FindByCustomer(ctx context.Context, customerID string) ([]*entity.Cart, error)
	Create(ctx context.Context, cart *entity.Cart) error
	Update(ctx context.Context, cart *entity.Cart) error
	Delete(ctx context.Context, cartID string) error
}

// CartItemRepository defines the interface for cart item persistence.
// Items are keyed by the (cartID, productID) pair.
type CartItemRepository interface {
	// Find returns errors.ErrCartItemNotFound when the pair has no item
	Find(ctx context.Context, cartID, productID string) (*entity.CartItem, error)
	FindByCart(ctx context.Context, cartID string) ([]*entity.CartItem, error)
	Create(ctx context.Context, item *entity.CartItem) error
	Update(ctx context.Context, item *entity.CartItem) error
	Delete(ctx context.Context, cartID, productID string) error
	// DeleteBatch removes all given items in one call; a partial failure is
	// returned as-is without compensation
	DeleteBatch(ctx context.Context, items []*entity.CartItem) error
}
