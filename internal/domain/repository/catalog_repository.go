package repository

import (
	"context"

	"shopcart/internal/domain/entity"
)

// ProductRepository defines the interface for product data persistence
type ProductRepository interface {
	// FindByID returns errors.ErrProductNotFound when no product has the ID
	FindByID(ctx context.Context, productID string) (*entity.Product, error)
	FindByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, productID string) error
}

// CategoryRepository defines the interface for category data persistence
type CategoryRepository interface {
	// FindByID returns errors.ErrCategoryNotFound when no category has the ID
	FindByID(ctx context.Context, categoryID string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, categoryID string) error
}
