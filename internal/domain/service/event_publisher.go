package service

import (
	"context"
	"time"
)

// Order event types.
const (
	OrderEventCreated       = "order_created"
	OrderEventStatusChanged = "order_status_changed"
	OrderEventDeleted       = "order_deleted"
)

// OrderEvent describes a change to an order for downstream consumers
type OrderEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	TotalItems int       `json:"total_items"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event; callers treat failures as non-fatal
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
