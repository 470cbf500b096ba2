package impl

import (
	"testing"

	"shopcart/internal/domain/entity"
	domainerrors "shopcart/internal/domain/errors"
	mockRepo "shopcart/internal/mocks/repository"
	"shopcart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func signupInput(email string) usecase.SignupInput {
	return usecase.SignupInput{
		Email:     email,
		Password:  "secret",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

func TestCustomerService_Signup(t *testing.T) {
	fx := createTestShop(t)

	customer, err := fx.customers.Signup(fx.ctx, signupInput("ada@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, customer.CustomerID)
	assert.Equal(t, "ada@example.com", customer.Email)

	_, err = fx.customers.Signup(fx.ctx, signupInput("ada@example.com"))
	require.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
	assert.Equal(t, "Email already exists", err.Error())

	customers, err := fx.customers.ListCustomers(fx.ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 1)
}

func TestCustomerService_Signup_RequiresCredentials(t *testing.T) {
	fx := createTestShop(t)

	_, err := fx.customers.Signup(fx.ctx, usecase.SignupInput{Password: "secret"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, "Email is required", err.Error())

	_, err = fx.customers.Signup(fx.ctx, usecase.SignupInput{Email: "ada@example.com"})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Equal(t, "Password is required", err.Error())
}

func TestCustomerService_Signup_LookupFailureStillCreates(t *testing.T) {
	repo := mockRepo.NewMockCustomerRepository(t)
	srv := NewCustomerService(CustomerServiceParams{CustomerRepo: repo, Logger: newDiscardLogger()})

	repo.On("FindByEmail", mock.Anything, "ada@example.com").Return(nil, errors.New("index unavailable"))
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Customer")).Return(nil)

	customer, err := srv.Signup(t.Context(), signupInput("ada@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", customer.Email)
}

func TestCustomerService_Login(t *testing.T) {
	fx := createTestShop(t)

	created, err := fx.customers.Signup(fx.ctx, signupInput("ada@example.com"))
	require.NoError(t, err)

	profile, err := fx.customers.Login(fx.ctx, usecase.LoginInput{Email: "ada@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.IsType(t, &entity.CustomerProfile{}, profile)
	assert.Equal(t, created.CustomerID, profile.CustomerID)
	assert.Equal(t, "ada@example.com", profile.Email)
	assert.Equal(t, "Lovelace", profile.LastName)

	_, err = fx.customers.Login(fx.ctx, usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = fx.customers.Login(fx.ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestCustomerService_UpdateCustomer(t *testing.T) {
	fx := createTestShop(t)

	ada, err := fx.customers.Signup(fx.ctx, signupInput("ada@example.com"))
	require.NoError(t, err)
	_, err = fx.customers.Signup(fx.ctx, signupInput("grace@example.com"))
	require.NoError(t, err)

	phone := "555-0100"
	updated, err := fx.customers.UpdateCustomer(fx.ctx, ada.CustomerID, usecase.UpdateCustomerInput{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "555-0100", updated.Phone)
	assert.Equal(t, "Ada", updated.FirstName)

	taken := "grace@example.com"
	_, err = fx.customers.UpdateCustomer(fx.ctx, ada.CustomerID, usecase.UpdateCustomerInput{Email: &taken})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)

	_, err = fx.customers.UpdateCustomer(fx.ctx, "missing", usecase.UpdateCustomerInput{Phone: &phone})
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_DeleteCustomer(t *testing.T) {
	fx := createTestShop(t)

	ada, err := fx.customers.Signup(fx.ctx, signupInput("ada@example.com"))
	require.NoError(t, err)

	require.NoError(t, fx.customers.DeleteCustomer(fx.ctx, ada.CustomerID))

	_, err = fx.customers.GetCustomer(fx.ctx, ada.CustomerID)
	require.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	assert.Equal(t, "Customer with ID "+ada.CustomerID+" not found", err.Error())

	err = fx.customers.DeleteCustomer(fx.ctx, ada.CustomerID)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}
