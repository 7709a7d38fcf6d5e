package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents a request to mark a confirmed order as delivered.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to deliver the given order.
func NewDeliverOrderCommand(orderID kernel.UUID) (DeliverOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeliverOrderCommand{}, err
	}

	return DeliverOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to deliver.
func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
