package queries

import (
	"errors"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves all orders placed by one customer.
type GetCustomerOrdersQuery struct {
	customerID string

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the given customer.
func NewGetCustomerOrdersQuery(customerID string) (GetCustomerOrdersQuery, error) {
	if customerID == "" {
		return GetCustomerOrdersQuery{}, errs.NewValueIsRequiredError("customerId")
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer whose orders are requested.
func (q GetCustomerOrdersQuery) CustomerID() string {
	return q.customerID
}
