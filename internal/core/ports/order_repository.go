// Package ports defines the contracts between the core and infrastructure.
// These interfaces establish boundaries for persistence and messaging,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations persist the order head together with its items and
// reconstruct aggregates through the domain's restore path, so anything
// loaded from storage has passed the same state machine as live mutation.
type OrderRepository interface {
	// Save persists the order aggregate, inserting it on first save and
	// replacing the stored head and items afterwards.
	Save(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no order with the id exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves all orders placed by the given customer.
	// Returns an empty slice when the customer has no orders.
	GetByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)

	// GetStalePending retrieves all orders still in PENDING status whose
	// last update happened strictly before the cutoff.
	GetStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// Exists reports whether an order with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes the order and its items from storage.
	// Returns an ObjectNotFoundError when no order with the id exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
