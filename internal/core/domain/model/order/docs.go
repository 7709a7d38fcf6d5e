// Package order implements the Order aggregate for the orders domain.
//
// The package contains the aggregate root (Order), the immutable order line
// value object (Item), the lifecycle state machine (Status) and the
// OrderCreated integration event. The aggregate enforces all business
// invariants: items can only change while the order is pending, the total
// always equals the sum of item subtotals, and status transitions follow the
// state machine exclusively.
//
// RestoreOrder rebuilds an aggregate from persisted data by replaying the
// same domain operations used for live mutation, so every load re-enforces
// the invariants checked at creation time.
package order
