package service

import "context"

// OrderPlacedEvent is published after a successful checkout. Downstream
// consumers (analytics, fulfillment) subscribe to it; publishing is
// fire-and-forget from checkout's point of view.
type OrderPlacedEvent struct {
	OrderID       string  `json:"order_id"`
	UserID        string  `json:"user_id"`
	TotalAmount   float64 `json:"total_amount"`
	ItemCount     int     `json:"item_count"`
	PaymentMethod string  `json:"payment_method"`
	RequestID     string  `json:"request_id,omitempty"`
}

// EventPublisher publishes order lifecycle events.
type EventPublisher interface {
	// PublishOrderPlaced publishes an order-placed event.
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
