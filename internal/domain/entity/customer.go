// Package entity contains the core business objects of the shop,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Customer is a registered shopper. Email is unique through the email index,
// but uniqueness is only checked best-effort at signup and update.
type Customer struct {
	CustomerID string    `json:"customerId"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Password   string    `json:"password,omitempty"` // Stored and compared as plain text.
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CustomerProfile is the projection of a Customer returned after login.
type CustomerProfile struct {
	CustomerID string    `json:"customerId"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Address    string    `json:"address"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Profile returns the customer without its password.
func (c *Customer) Profile() *CustomerProfile {
	return &CustomerProfile{
		CustomerID: c.CustomerID,
		Email:      c.Email,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Address:    c.Address,
		Phone:      c.Phone,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
