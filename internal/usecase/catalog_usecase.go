package usecase

import (
	"context"

	"shopcart/internal/domain/entity"
)

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	ImageURL    string
	CategoryID  string
}

// UpdateProductInput carries the fields to change; nil fields are left as they are.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
	ImageURL    *string
	CategoryID  *string
}

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name        string
	Description string
	ImageURL    string
}

// UpdateCategoryInput carries the fields to change; nil fields are left as they are.
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	ImageURL    *string
}

// ProductUsecase defines the product catalog operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, productID string) (*entity.Product, error)
	// ListProducts filters by category when categoryID is set, otherwise scans.
	ListProducts(ctx context.Context, categoryID string) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, productID string, input UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

// CategoryUsecase defines the category operations.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*entity.Category, error)
	GetCategory(ctx context.Context, categoryID string) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, input UpdateCategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}
