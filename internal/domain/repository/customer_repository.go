// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"shopcart/internal/domain/entity"
)

// CustomerRepository defines the interface for customer data persistence
type CustomerRepository interface {
	// FindByID returns errors.ErrCustomerNotFound when no customer has the ID
	FindByID(ctx context.Context, customerID string) (*entity.Customer, error)
	// FindByEmail queries the email index; an empty slice means no match
	FindByEmail(ctx context.Context, email string) ([]*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) error
	Update(ctx context.Context, customer *entity.Customer) error
	// Delete is a no-op for an unknown ID
	Delete(ctx context.Context, customerID string) error
}
