// Package repository holds testify mocks for the repository interfaces.
package repository

import (
	"context"

	"shopcart/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCustomerRepository is a mock type for the repository.CustomerRepository interface.
type MockCustomerRepository struct {
	mock.Mock
}

// NewMockCustomerRepository creates a mock that asserts its expectations on cleanup.
func NewMockCustomerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCustomerRepository {
	m := &MockCustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, customerID string) (*entity.Customer, error) {
	args := m.Called(ctx, customerID)
	customer, _ := args.Get(0).(*entity.Customer)

	return customer, args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Customer, error) {
	args := m.Called(ctx, email)
	customers, _ := args.Get(0).([]*entity.Customer)

	return customers, args.Error(1)
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	args := m.Called(ctx)
	customers, _ := args.Get(0).([]*entity.Customer)

	return customers, args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, customerID string) error {
	return m.Called(ctx, customerID).Error(0)
}
