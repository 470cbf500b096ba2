package store

import (
	"context"

	"shopcart/internal/domain/constants"
	"shopcart/internal/domain/entity"
	domainerrors "shopcart/internal/domain/errors"
	"shopcart/internal/domain/repository"
	"shopcart/internal/errors"
	"shopcart/internal/infra/persistence/model"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	coll *Collection[model.ProductModel]
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(s *Store) repository.ProductRepository {
	return &productRepository{coll: s.Products}
}

func (repo *productRepository) FindByID(ctx context.Context, productID string) (*entity.Product, error) {
	doc := &model.ProductModel{ProductID: productID}
	if err := repo.coll.Get(ctx, doc); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	return toProductDomain(doc), nil
}

func (repo *productRepository) FindByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	docs, err := repo.coll.Query(ctx, constants.IndexCategory, "categoryId", categoryID)
	if err != nil {
		return nil, err
	}

	return mapSlice(docs, toProductDomain), nil
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	docs, err := repo.coll.Scan(ctx)
	if err != nil {
		return nil, err
	}

	return mapSlice(docs, toProductDomain), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return repo.coll.Put(ctx, fromProductDomain(product))
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return repo.coll.Update(ctx, fromProductDomain(product))
}

func (repo *productRepository) Delete(ctx context.Context, productID string) error {
	return repo.coll.Delete(ctx, &model.ProductModel{ProductID: productID})
}

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	coll *Collection[model.CategoryModel]
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(s *Store) repository.CategoryRepository {
	return &categoryRepository{coll: s.Categories}
}

func (repo *categoryRepository) FindByID(ctx context.Context, categoryID string) (*entity.Category, error) {
	doc := &model.CategoryModel{CategoryID: categoryID}
	if err := repo.coll.Get(ctx, doc); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, err
	}

	return toCategoryDomain(doc), nil
}

func (repo *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	docs, err := repo.coll.Scan(ctx)
	if err != nil {
		return nil, err
	}

	return mapSlice(docs, toCategoryDomain), nil
}

func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return repo.coll.Put(ctx, fromCategoryDomain(category))
}

func (repo *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return repo.coll.Update(ctx, fromCategoryDomain(category))
}

func (repo *categoryRepository) Delete(ctx context.Context, categoryID string) error {
	return repo.coll.Delete(ctx, &model.CategoryModel{CategoryID: categoryID})
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ProductID:   data.ProductID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		ImageURL:    data.ImageURL,
		CategoryID:  data.CategoryID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ProductID:   data.ProductID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		ImageURL:    data.ImageURL,
		CategoryID:  data.CategoryID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
