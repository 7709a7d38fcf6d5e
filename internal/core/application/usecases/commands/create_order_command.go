package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// NewItemArgs carries the raw line data for one item of a new order.
// Validation happens when the command constructs the domain item from it.
type NewItemArgs struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreateOrderCommand represents a request to create a new order for a customer.
// Item identifiers are generated at command construction, so a command holds
// fully validated domain items by the time a handler sees it.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "customer-42", []NewItemArgs{
//	    {ProductID: "sku-1", Quantity: 2, UnitPrice: decimal.RequireFromString("9.99")},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID string
	items      []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid, the customer ID is not empty and
// every item argument yields a valid domain item. Returns a joined error
// describing every validation failure.
func NewCreateOrderCommand(orderID kernel.UUID, customerID string, items []NewItemArgs) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Items returns the validated domain items for the new order.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(args []NewItemArgs) error {
	if len(args) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(args))
	for _, arg := range args {
		item, err := order.NewItem(kernel.NewUUID(), arg.ProductID, arg.Quantity, arg.UnitPrice)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	c.items = items
	return nil
}
