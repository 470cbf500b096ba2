package handler

import (
	"log/slog"

	"shopcart/internal/delivery/api/response"
	"shopcart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// CreateCartRequest represents the request body for creating a cart
type CreateCartRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
}

// AddItemRequest represents the request body for adding a product to a cart
type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateItemRequest represents the request body for changing an item quantity
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// CreateCart returns the customer's existing cart with 200, or a new one with 201.
func (h *CartHandler) CreateCart(c echo.Context) error {
	var req CreateCartRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, created, err := h.cartUC.CreateCart(c.Request().Context(), req.CustomerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if created {
		return response.Send(c, response.Created(view))
	}

	return response.Send(c, response.Success(view))
}

func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.cartUC.GetCart(c.Request().Context(), c.Param("cartId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Success(view))
}

func (h *CartHandler) GetCartByCustomer(c echo.Context) error {
	view, err := h.cartUC.GetCartByCustomer(c.Request().Context(), c.Param("customerId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Success(view))
}

// AddItem handles adding a product to a cart
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.cartUC.AddItem(c.Request().Context(), usecase.AddCartItemInput{
		CartID:    c.Param("cartId"),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Success(view))
}

// UpdateItem handles replacing the quantity of a cart item
func (h *CartHandler) UpdateItem(c echo.Context) error {
	var req UpdateItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.cartUC.UpdateItemQuantity(c.Request().Context(), usecase.UpdateCartItemInput{
		CartID:    c.Param("cartId"),
		ProductID: c.Param("productId"),
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Success(view))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	view, err := h.cartUC.RemoveItem(c.Request().Context(), c.Param("cartId"), c.Param("productId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Success(view))
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	view, err := h.cartUC.ClearCart(c.Request().Context(), c.Param("cartId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Success(view))
}
