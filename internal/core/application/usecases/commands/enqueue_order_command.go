package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrEnqueueOrderCommandIsNotConstructed = errors.New(
	"EnqueueOrderCommand must be created via NewEnqueueOrderCommand constructor",
)

// EnqueueOrderCommand places a pending order into the waiting queue when no
// vehicles are free. The order joins at the back; its position is assigned
// by the waiting queue service.
type EnqueueOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	now     time.Time

	guard guard.ConstructorGuard
}

// NewEnqueueOrderCommand creates a command to queue the given order.
// now is recorded as the order's queued-at timestamp.
func NewEnqueueOrderCommand(orderID kernel.UUID, now time.Time) (EnqueueOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return EnqueueOrderCommand{}, err
	}
	if now.IsZero() {
		return EnqueueOrderCommand{}, errs.NewValueIsRequiredError("now")
	}

	return EnqueueOrderCommand{
		orderID: orderID,
		now:     now,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c EnqueueOrderCommand) Validate() error {
	return c.guard.Validate(ErrEnqueueOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to queue.
func (c EnqueueOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Now returns the timestamp recorded as queued-at.
func (c EnqueueOrderCommand) Now() time.Time {
	return c.now
}
