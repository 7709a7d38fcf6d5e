package order

import (
	"errors"
	"strings"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder factory method. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a customer order. It is the aggregate root that manages
// the order lifecycle from creation through confirmation to delivery or
// cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must reference a non-empty customer
//   - Total amount always equals the sum of the current items' subtotals
//   - Items can be added or removed only while the order is PENDING
//   - Status transitions follow the state machine defined on Status; the
//     status field is never assigned directly
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation. It exclusively
// owns its item collection: accessors return snapshot copies and the aggregate
// is the sole mutator. Every successful mutating operation refreshes the
// updatedAt timestamp.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer that placed the order
	customerID string

	// items is the owned collection of order lines
	items []Item

	// status is the current state in the order lifecycle
	status Status

	// totalAmount is the sum of item subtotals, recomputed on every item mutation
	totalAmount decimal.Decimal

	// createdAt is set once at construction
	createdAt time.Time

	// updatedAt is refreshed on every mutating operation
	updatedAt time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new empty Order in PENDING status with validation.
// This is the only way to create a valid new Order.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - customerID: Identifier of the customer placing the order (must be non-empty)
//
// The order starts with no items, a zero total and both timestamps set to
// the current UTC time. Items are added afterwards via AddItem so each line
// is validated and the total recomputed incrementally.
func NewOrder(id kernel.UUID, customerID string) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Pending,
		totalAmount:   decimal.Zero,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder rebuilds an Order from its persisted representation by
// replaying domain operations rather than assigning stored fields.
//
// The stored status and total are derived state and not independently
// trustworthy, so reconstruction:
//  1. Constructs a fresh PENDING order with the stored identity.
//  2. Re-adds each stored item through the normal AddItem path, so every
//     item re-validates and the total is recomputed exactly as at original
//     construction.
//  3. Replays the explicit transition path to the stored status: nothing for
//     PENDING, confirm for CONFIRMED, cancel for CANCELLED, confirm then
//     deliver for DELIVERED. A status with no path is rejected as invalid.
//  4. Overwrites createdAt/updatedAt with the stored values, discarding the
//     replay's own timestamp refreshes in favor of the persisted audit trail.
//
// Anything loaded from storage is therefore provably reachable via the same
// state machine used for live mutation: a hand-edited DELIVERED order with
// zero items fails here with the same invalid-state error confirm would
// return on a live empty order.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	items []Item,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order, err := NewOrder(id, customerID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = order.AddItem(item); err != nil {
			return nil, err
		}
	}

	// Directed transition path per target status. A switch over the valid
	// set avoids an open-ended replay loop that could never terminate on an
	// unreachable stored status.
	switch status {
	case Pending:
		// initial status, nothing to replay
	case Confirmed:
		err = order.Confirm()
	case Cancelled:
		err = order.Cancel()
	case Delivered:
		err = errors.Join(order.Confirm(), order.Deliver())
	default:
		err = errs.NewInvalidStateError("restore", status.String())
	}
	if err != nil {
		return nil, err
	}

	order.createdAt = createdAt
	order.updatedAt = updatedAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer that placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a snapshot copy of the order's items.
// Mutating the returned slice has no effect on the aggregate.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the sum of the current items' subtotals.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutating operation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AddItem appends an item to the order and recomputes the total.
//
// Business rules:
//   - The item must be a properly constructed Item
//   - The order must be in PENDING status
//
// Returns an invalid-state error and leaves the aggregate unchanged when the
// order is no longer pending.
func (o *Order) AddItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidateModifyItems(); err != nil {
		return err
	}

	o.items = append(o.items, item)
	o.recalculateTotalAmount()
	o.touch()
	return nil
}

// RemoveItem removes the item with the given identifier and recomputes the
// total. Removing an identifier that is not present is not an error.
//
// The order must be in PENDING status; otherwise an invalid-state error is
// returned and the aggregate is left unchanged.
func (o *Order) RemoveItem(itemID kernel.UUID) error {
	if err := o.status.ValidateModifyItems(); err != nil {
		return err
	}

	kept := o.items[:0]
	for _, item := range o.items {
		if !item.ID().IsEqual(itemID) {
			kept = append(kept, item)
		}
	}
	o.items = kept
	o.recalculateTotalAmount()
	o.touch()
	return nil
}

// Confirm transitions the order from PENDING to CONFIRMED.
//
// Business rules:
//   - The order must contain at least one item
//   - The order must be in PENDING status
//
// On failure the aggregate is left unchanged.
func (o *Order) Confirm() error {
	if len(o.items) == 0 {
		return errs.NewInvalidStateErrorWithCause("confirm", o.status.String(),
			errors.New("order has no items"))
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel transitions the order to CANCELLED from either PENDING or CONFIRMED.
// Cancelling an empty pending order is allowed; delivered or already
// cancelled orders cannot be cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Deliver transitions the order from CONFIRMED to DELIVERED, the terminal
// success state. Unconfirmed orders cannot be delivered.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// recalculateTotalAmount keeps the totalAmount invariant: the sum of the
// current items' subtotals, zero for an empty order.
func (o *Order) recalculateTotalAmount() {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.totalAmount = total
}

// touch refreshes the updatedAt timestamp after a successful mutation.
func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the customer reference.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}
