package handler

import (
	"log/slog"

	"shopcart/internal/delivery/api/response"
	"shopcart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	CartID          string `json:"cartId" validate:"required"`
	CustomerID      string `json:"customerId" validate:"required"`
	ShippingAddress string `json:"shippingAddress" validate:"required"`
	PaymentMethod   string `json:"paymentMethod" validate:"required"`
}

// UpdateOrderStatusRequest represents the request body for a status change
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateOrder turns the customer's cart into an order
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.orderUC.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		CartID:          req.CartID,
		CustomerID:      req.CustomerID,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Created(view))
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	view, err := h.orderUC.GetOrder(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Success(view))
}

// ListOrders filters by the customerId query parameter when present.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context(), c.QueryParam("customerId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Success(orders))
}

func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	var req UpdateOrderStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	view, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), c.Param("orderId"), req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Success(view))
}

func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	if err := h.orderUC.DeleteOrder(c.Request().Context(), c.Param("orderId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.NoContent())
}
