// Package model holds the document shapes stored in the docstore collections.
// Field names in the docstore tags are the attribute names on the wire.
package model

import "time"

// CustomerModel is the stored form of a customer, keyed by customerId.
type CustomerModel struct {
	CustomerID string    `docstore:"customerId"`
	Email      string    `docstore:"email"`
	FirstName  string    `docstore:"firstName"`
	LastName   string    `docstore:"lastName"`
	Password   string    `docstore:"password"`
	Address    string    `docstore:"address"`
	Phone      string    `docstore:"phone"`
	CreatedAt  time.Time `docstore:"createdAt"`
	UpdatedAt  time.Time `docstore:"updatedAt"`
}
