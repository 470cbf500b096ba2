package impl

import (
	"context"
	"log/slog"
	"time"

	"shopcart/internal/domain/entity"
	domainerrors "shopcart/internal/domain/errors"
	"shopcart/internal/domain/repository"
	"shopcart/internal/errors"
	"shopcart/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) CreateCategory(ctx context.Context, input usecase.CreateCategoryInput) (*entity.Category, error) {
	if input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Name is required")
	}

	now := time.Now().UTC()
	category := &entity.Category{
		CategoryID:  uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

func (srv *categoryService) GetCategory(ctx context.Context, categoryID string) (*entity.Category, error) {
	return srv.findCategory(ctx, categoryID)
}

func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *categoryService) UpdateCategory(ctx context.Context, categoryID string, input usecase.UpdateCategoryInput) (*entity.Category, error) {
	category, err := srv.findCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	setIfPresent(&category.Name, input.Name)
	setIfPresent(&category.Description, input.Description)
	setIfPresent(&category.ImageURL, input.ImageURL)
	category.UpdatedAt = time.Now().UTC()

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

func (srv *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if _, err := srv.findCategory(ctx, categoryID); err != nil {
		return err
	}

	if err := srv.categoryRepo.Delete(ctx, categoryID); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	srv.logger.Info("Category deleted", slog.String("category_id", categoryID))

	return nil
}

func (srv *categoryService) findCategory(ctx context.Context, categoryID string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WithMessage("Category with ID %s not found", categoryID)
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}
