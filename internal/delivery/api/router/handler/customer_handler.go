package handler

import (
	"log/slog"

	"shopcart/internal/delivery/api/response"
	"shopcart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
	Logger     *slog.Logger
}

// CustomerHandler holds dependencies for customer-related handlers
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
	logger     *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{
		customerUC: params.CustomerUC,
		logger:     params.Logger,
	}
}

// SignupRequest represents the request body for customer registration
type SignupRequest struct {
	Email     string `json:"email" validate:"required"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// LoginRequest represents the request body for customer login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateCustomerRequest carries the fields to change; absent fields are kept.
type UpdateCustomerRequest struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Address   *string `json:"address"`
	Phone     *string `json:"phone"`
}

// Signup handles customer registration
func (h *CustomerHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.Signup(c.Request().Context(), usecase.SignupInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Phone:     req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Created(customer))
}

// Login returns the customer profile without the password
func (h *CustomerHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.customerUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Success(profile))
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	customer, err := h.customerUC.GetCustomer(c.Request().Context(), c.Param("customerId"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Success(customer))
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.customerUC.ListCustomers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Success(customers))
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	var req UpdateCustomerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	customer, err := h.customerUC.UpdateCustomer(c.Request().Context(), c.Param("customerId"), usecase.UpdateCustomerInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Phone:     req.Phone,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.Success(customer))
}

func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	if err := h.customerUC.DeleteCustomer(c.Request().Context(), c.Param("customerId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Send(c, response.NoContent())
}
