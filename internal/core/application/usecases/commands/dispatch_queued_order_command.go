package commands

import (
	"errors"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrDispatchQueuedOrderCommandIsNotConstructed = errors.New(
	"DispatchQueuedOrderCommand must be created via NewDispatchQueuedOrderCommand constructor",
)

// DispatchQueuedOrderCommand triggers automatic dispatch of the head of the
// waiting queue. The background dispatcher fires it periodically; vehicles
// are picked first-fit from the available fleet.
type DispatchQueuedOrderCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewDispatchQueuedOrderCommand creates a command to dispatch the highest
// priority queued order. now is recorded as the execution start time.
func NewDispatchQueuedOrderCommand(now time.Time) (DispatchQueuedOrderCommand, error) {
	if now.IsZero() {
		return DispatchQueuedOrderCommand{}, errs.NewValueIsRequiredError("now")
	}

	return DispatchQueuedOrderCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchQueuedOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchQueuedOrderCommandIsNotConstructed)
}

// Now returns the timestamp recorded as the execution start.
func (c DispatchQueuedOrderCommand) Now() time.Time {
	return c.now
}
