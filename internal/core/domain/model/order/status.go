package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	PENDING ──confirm──> CONFIRMED ──deliver──> DELIVERED
//	   │                     │
//	   └───────cancel────────┴──────> CANCELLED
//
// CANCELLED and DELIVERED are terminal: no further transitions are allowed.
// Items can be added or removed only while the order is PENDING.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Items can be added and removed only in this status.
	Pending

	// Confirmed indicates the order has been confirmed by the customer.
	// Confirmed orders can be delivered or cancelled but no longer modified.
	Confirmed

	// Cancelled indicates the order was cancelled before delivery.
	// This is a terminal state with no further transitions allowed.
	Cancelled

	// Delivered indicates the order has been successfully delivered.
	// This is a terminal state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Cancelled: "CANCELLED",
		Delivered: "DELIVERED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Cancelled: "CANCELLED",
		Delivered: "DELIVERED",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Cancelled, Delivered.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persistence/display name of the status.
//
// Returns "PENDING", "CONFIRMED", "CANCELLED" or "DELIVERED" for valid
// statuses and "UNKNOWN" for invalid values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a stored status representation.
// Returns an invalid-value error for anything outside the valid set,
// so corrupted persisted statuses are rejected at the load boundary.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether no further transitions are permitted from s.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Delivered
}

// ValidateModifyItems checks whether the item collection may be changed
// in the current status without performing any transition.
//
// Items can only be added or removed while the order is Pending.
func (s Status) ValidateModifyItems() error {
	if s != Pending {
		return errs.NewInvalidStateError("modify items of", s.String())
	}
	return nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Any other origin (already confirmed, terminal, or Unknown) returns an
// invalid-state error and the zero Status.
//
// The non-empty-items guard for confirmation lives on the Order aggregate;
// this method only enforces the status transition itself.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("confirm", s.String())
	}
	return Confirmed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Confirmed -> Cancelled
//
// Delivered and already-cancelled orders cannot be cancelled; Unknown is
// rejected as well.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Confirmed {
		return 0, errs.NewInvalidStateError("cancel", s.String())
	}
	return Cancelled, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Confirmed -> Delivered
//
// Orders must be confirmed before delivery; any other origin returns an
// invalid-state error.
func (s Status) Deliver() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidStateError("deliver", s.String())
	}
	return Delivered, nil
}
