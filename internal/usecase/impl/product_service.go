package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "shopcart/internal/delivery/context"
	"shopcart/internal/domain/entity"
	domainerrors "shopcart/internal/domain/errors"
	"shopcart/internal/domain/repository"
	"shopcart/internal/errors"
	"shopcart/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

func (srv *productService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	if input.Name == "" || input.CategoryID == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Name, price, and categoryId are required")
	}
	if input.Price < 0 || input.Stock < 0 {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Price and stock must not be negative")
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ProductID:   uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		CategoryID:  input.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", product.ProductID))

	return product, nil
}

func (srv *productService) GetProduct(ctx context.Context, productID string) (*entity.Product, error) {
	return srv.findProduct(ctx, productID)
}

func (srv *productService) ListProducts(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	var (
		products []*entity.Product
		err      error
	)
	if categoryID != "" {
		products, err = srv.productRepo.FindByCategory(ctx, categoryID)
	} else {
		products, err = srv.productRepo.List(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct applies the non-nil fields of input.
func (srv *productService) UpdateProduct(ctx context.Context, productID string, input usecase.UpdateProductInput) (*entity.Product, error) {
	if (input.Price != nil && *input.Price < 0) || (input.Stock != nil && *input.Stock < 0) {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Price and stock must not be negative")
	}

	product, err := srv.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	setIfPresent(&product.Name, input.Name)
	setIfPresent(&product.Description, input.Description)
	setIfPresent(&product.Price, input.Price)
	setIfPresent(&product.Stock, input.Stock)
	setIfPresent(&product.ImageURL, input.ImageURL)
	setIfPresent(&product.CategoryID, input.CategoryID)
	product.UpdatedAt = time.Now().UTC()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, productID string) error {
	if _, err := srv.findProduct(ctx, productID); err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("product_id", productID))

	return nil
}

func (srv *productService) findProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithMessage("Product with ID %s not found", productID)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// setIfPresent copies *src into dst when src is set.
func setIfPresent[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
