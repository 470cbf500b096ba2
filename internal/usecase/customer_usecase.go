package usecase

import (
	"context"

	"shopcart/internal/domain/entity"
)

// SignupInput defines the data required to register a customer.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Address   string
	Phone     string
}

// LoginInput defines the credentials for a customer login.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateCustomerInput carries the fields to change; nil fields are left as they are.
type UpdateCustomerInput struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
	Address   *string
	Phone     *string
}

// CustomerUsecase defines the customer account operations.
type CustomerUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*entity.Customer, error)
	Login(ctx context.Context, input LoginInput) (*entity.CustomerProfile, error)
	GetCustomer(ctx context.Context, customerID string) (*entity.Customer, error)
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, input UpdateCustomerInput) (*entity.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}
