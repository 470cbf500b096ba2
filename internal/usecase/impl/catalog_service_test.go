package impl

import (
	"testing"

	domainerrors "shopcart/internal/domain/errors"
	"shopcart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductService_CRUD(t *testing.T) {
	fx := createTestShop(t)

	product, err := fx.products.CreateProduct(fx.ctx, usecase.CreateProductInput{
		Name:       "Mug",
		Price:      7.5,
		Stock:      4,
		CategoryID: "kitchen",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ProductID)

	_, err = fx.products.CreateProduct(fx.ctx, usecase.CreateProductInput{Name: "Pen", Price: 1, CategoryID: "office"})
	require.NoError(t, err)

	all, err := fx.products.ListProducts(fx.ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	kitchen, err := fx.products.ListProducts(fx.ctx, "kitchen")
	require.NoError(t, err)
	require.Len(t, kitchen, 1)
	assert.Equal(t, product.ProductID, kitchen[0].ProductID)

	stock := 9
	updated, err := fx.products.UpdateProduct(fx.ctx, product.ProductID, usecase.UpdateProductInput{Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Stock)
	assert.Equal(t, "Mug", updated.Name)

	require.NoError(t, fx.products.DeleteProduct(fx.ctx, product.ProductID))

	_, err = fx.products.GetProduct(fx.ctx, product.ProductID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	err = fx.products.DeleteProduct(fx.ctx, product.ProductID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_Validation(t *testing.T) {
	fx := createTestShop(t)

	_, err := fx.products.CreateProduct(fx.ctx, usecase.CreateProductInput{Price: 1, CategoryID: "kitchen"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.products.CreateProduct(fx.ctx, usecase.CreateProductInput{Name: "Mug", Price: -1, CategoryID: "kitchen"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	stock := -3
	_, err = fx.products.UpdateProduct(fx.ctx, "any", usecase.UpdateProductInput{Stock: &stock})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCategoryService_CRUD(t *testing.T) {
	fx := createTestShop(t)

	_, err := fx.categories.CreateCategory(fx.ctx, usecase.CreateCategoryInput{})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, "Name is required", err.Error())

	category, err := fx.categories.CreateCategory(fx.ctx, usecase.CreateCategoryInput{Name: "Kitchen"})
	require.NoError(t, err)

	description := "Pots and pans"
	updated, err := fx.categories.UpdateCategory(fx.ctx, category.CategoryID, usecase.UpdateCategoryInput{Description: &description})
	require.NoError(t, err)
	assert.Equal(t, "Kitchen", updated.Name)
	assert.Equal(t, description, updated.Description)

	categories, err := fx.categories.ListCategories(fx.ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	require.NoError(t, fx.categories.DeleteCategory(fx.ctx, category.CategoryID))

	_, err = fx.categories.GetCategory(fx.ctx, category.CategoryID)
	require.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	assert.Equal(t, "Category with ID "+category.CategoryID+" not found", err.Error())
}
