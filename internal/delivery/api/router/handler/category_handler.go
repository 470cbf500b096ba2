package handler

import (
	"shopcart/internal/delivery/api/response"
	"shopcart/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CategoryHandler holds dependencies for category-related handlers
type CategoryHandler struct {
	categoryUC usecase.CategoryUsecase
}

// NewCategoryHandler is the constructor for CategoryHandler
func NewCategoryHandler(categoryUC usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC}
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.CreateCategory(c.Request().Context(), usecase.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Created(category))
}

func (h *CategoryHandler) GetCategory(c echo.Context) error {
	category, err := h.categoryUC.GetCategory(c.Request().Context(), c.Param("categoryId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Success(category))
}

func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Success(categories))
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	var req UpdateCategoryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.categoryUC.UpdateCategory(c.Request().Context(), c.Param("categoryId"), usecase.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Success(category))
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	if err := h.categoryUC.DeleteCategory(c.Request().Context(), c.Param("categoryId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.NoContent())
}
