package ports

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// OrderEventPublisher publishes order integration events to a message broker.
type OrderEventPublisher interface {
	// PublishOrderCreated publishes the order creation event.
	PublishOrderCreated(ctx context.Context, event order.CreatedEvent) error

	// Close releases the underlying broker connection.
	Close() error
}
