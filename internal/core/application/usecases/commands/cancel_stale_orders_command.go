package commands

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand represents a request to cancel every PENDING order
// that has not been touched for longer than the given time to live.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command with the given pending TTL.
// The TTL must be positive.
func NewCancelStaleOrdersCommand(ttl time.Duration) (CancelStaleOrdersCommand, error) {
	if ttl <= 0 {
		return CancelStaleOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause("ttl",
			fmt.Errorf("%s is not greater than 0", ttl))
	}

	return CancelStaleOrdersCommand{
		ttl:   ttl,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// TTL returns how long a PENDING order may stay untouched before it is
// considered stale.
func (c CancelStaleOrdersCommand) TTL() time.Duration {
	return c.ttl
}
