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

// customerService implements the CustomerUsecase interface.
// Passwords are stored and compared as plain text.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		logger:       params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Signup registers a customer after a best-effort email uniqueness check.
func (srv *customerService) Signup(ctx context.Context, input usecase.SignupInput) (*entity.Customer, error) {
	if input.Email == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Email is required")
	}
	if input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Password is required")
	}

	if err := srv.ensureEmailAvailable(ctx, input.Email); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	customer := &entity.Customer{
		CustomerID: uuid.New().String(),
		Email:      input.Email,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Password:   input.Password,
		Address:    input.Address,
		Phone:      input.Phone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	srv.log(ctx).Info("Customer signed up", slog.String("customer_id", customer.CustomerID))

	return customer, nil
}

// Login matches the password by plain equality. An unknown email and a wrong
// password produce the same error.
func (srv *customerService) Login(ctx context.Context, input usecase.LoginInput) (*entity.CustomerProfile, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Email and password are required")
	}

	customers, err := srv.customerRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customer by email")
	}
	if len(customers) == 0 {
		srv.log(ctx).Info("Login attempt for unknown email")

		return nil, domainerrors.ErrInvalidCredentials
	}

	customer := customers[0]
	if customer.Password != input.Password {
		srv.log(ctx).Info("Login attempt with wrong password", slog.String("customer_id", customer.CustomerID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return customer.Profile(), nil
}

func (srv *customerService) GetCustomer(ctx context.Context, customerID string) (*entity.Customer, error) {
	return srv.findCustomer(ctx, customerID)
}

func (srv *customerService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := srv.customerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// UpdateCustomer applies the non-nil fields of input. A changed email goes
// through the same best-effort uniqueness check as signup.
func (srv *customerService) UpdateCustomer(ctx context.Context, customerID string, input usecase.UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := srv.findCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil && *input.Email != customer.Email {
		if err := srv.ensureEmailAvailable(ctx, *input.Email); err != nil {
			return nil, err
		}
	}

	setIfPresent(&customer.Email, input.Email)
	setIfPresent(&customer.Password, input.Password)
	setIfPresent(&customer.FirstName, input.FirstName)
	setIfPresent(&customer.LastName, input.LastName)
	setIfPresent(&customer.Address, input.Address)
	setIfPresent(&customer.Phone, input.Phone)
	customer.UpdatedAt = time.Now().UTC()

	if err := srv.customerRepo.Update(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to update customer")
	}

	return customer, nil
}

func (srv *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	if _, err := srv.findCustomer(ctx, customerID); err != nil {
		return err
	}

	if err := srv.customerRepo.Delete(ctx, customerID); err != nil {
		return errors.Wrap(err, "failed to delete customer")
	}

	srv.log(ctx).Info("Customer deleted", slog.String("customer_id", customerID))

	return nil
}

// ensureEmailAvailable rejects an email already on file. A failing lookup is
// logged and treated as available.
func (srv *customerService) ensureEmailAvailable(ctx context.Context, email string) error {
	existing, err := srv.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Email uniqueness check failed, continuing", slog.Any("error", err))

		return nil
	}
	if len(existing) > 0 {
		return domainerrors.ErrEmailAlreadyExists
	}

	return nil
}

func (srv *customerService) findCustomer(ctx context.Context, customerID string) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound.WithMessage("Customer with ID %s not found", customerID)
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}
