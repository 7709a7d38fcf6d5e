package order

import (
	"errors"
	"fmt"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory function. This ensures all items are properly validated.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an immutable value object representing a single order line.
//
// Item follows these invariants, checked once at construction and never
// re-checked afterwards (immutability keeps them true for the object's
// entire lifetime):
//   - Must have a valid unique identifier
//   - Product ID must not be empty
//   - Quantity must be a positive integer
//   - Unit price must be strictly positive
//   - Subtotal equals quantity × unit price, computed once at construction
//
// Items are owned exclusively by the Order that holds them. Two items are
// equal iff their product ID, quantity and unit price match; the identity
// is excluded from equality.
type Item struct {
	// id is the unique identifier assigned at construction
	id kernel.UUID

	// productID references the purchased product
	productID string

	// quantity is the number of units (must be positive)
	quantity int

	// unitPrice is the price of a single unit (must be positive)
	unitPrice decimal.Decimal

	// subtotal is quantity × unitPrice, derived once at construction
	subtotal decimal.Decimal

	guard guard.ConstructorGuard
}

// NewItem creates a new Item with validation. This is the only way to create
// a valid Item, ensuring all business invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the item (supplied by the caller's generator)
//   - productID: Non-empty product reference
//   - quantity: Number of units, must be greater than 0
//   - unitPrice: Price per unit, must be greater than 0
//
// Returns the created item if all validations pass, or a joined validation
// error describing every invalid argument. The subtotal is computed exactly
// as quantity × unitPrice using decimal arithmetic.
func NewItem(id kernel.UUID, productID string, quantity int, unitPrice decimal.Decimal) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	item.subtotal = item.unitPrice.Mul(decimal.NewFromInt(int64(item.quantity)))
	return item, nil
}

// Validate ensures the Item was properly constructed through NewItem.
// This prevents bypassing validation by directly instantiating the struct.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by value: product ID, quantity and unit price.
// The item identity is intentionally excluded from the comparison.
func (i Item) IsEqual(other Item) bool {
	return i.productID == other.productID &&
		i.quantity == other.quantity &&
		i.unitPrice.Equal(other.unitPrice)
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the purchased product's identifier.
func (i Item) ProductID() string {
	return i.productID
}

// Quantity returns the number of units.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns quantity × unit price, computed once at construction.
func (i Item) Subtotal() decimal.Decimal {
	return i.subtotal
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID string) error {
	if strings.TrimSpace(productID) == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
