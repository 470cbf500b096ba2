package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCart_Recalculate(t *testing.T) {
	now := time.Now().UTC()
	cart := NewCart("c1", "cust-1", now)

	items := []*CartItem{
		{ProductID: "p1", Price: 5, Quantity: 3},
		{ProductID: "p2", Price: 2.5, Quantity: 2},
	}
	cart.Recalculate(items, now)

	assert.Equal(t, 5, cart.TotalItems)
	assert.InDelta(t, 20.0, cart.TotalPrice, 1e-9)

	cart.Reset(now)
	assert.Zero(t, cart.TotalItems)
	assert.Zero(t, cart.TotalPrice)
}

func TestCartItem_AddQuantity(t *testing.T) {
	now := time.Now().UTC()
	product := &Product{ProductID: "p1", Name: "Mug", Price: 5, ImageURL: "mug.png"}

	item := NewCartItem("c1", product, 3, now)
	assert.InDelta(t, 15.0, item.TotalPrice, 1e-9)

	item.AddQuantity(2, now)
	assert.Equal(t, 5, item.Quantity)
	assert.InDelta(t, 25.0, item.TotalPrice, 1e-9)
	assert.Equal(t, "Mug", item.Name)
}

func TestProduct_DecrementStock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		quantity int
		want     int
	}{
		{name: "partial", stock: 10, quantity: 5, want: 5},
		{name: "exact", stock: 3, quantity: 3, want: 0},
		{name: "clamped at zero", stock: 2, quantity: 7, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Stock: tt.stock}
			p.DecrementStock(tt.quantity)
			assert.Equal(t, tt.want, p.Stock)
		})
	}
}

func TestOrderStatus_IsValid(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, OrderStatus("SHELVED").IsValid())
	assert.False(t, OrderStatus("pending").IsValid())
	assert.Equal(t, "PENDING, PROCESSING, SHIPPED, DELIVERED, CANCELLED", OrderStatusList())
}

func TestCustomer_Profile(t *testing.T) {
	c := &Customer{CustomerID: "cust-1", Email: "a@b.c", Password: "secret", FirstName: "Ada"}

	p := c.Profile()
	assert.Equal(t, "cust-1", p.CustomerID)
	assert.Equal(t, "Ada", p.FirstName)
	assert.Equal(t, "a@b.c", p.Email)
}
