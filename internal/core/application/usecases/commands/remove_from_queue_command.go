package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRemoveFromQueueCommandIsNotConstructed = errors.New(
	"RemoveFromQueueCommand must be created via NewRemoveFromQueueCommand constructor",
)

// RemoveFromQueueCommand takes an order out of the waiting queue and back
// to pending. Remaining entries keep their positions.
type RemoveFromQueueCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveFromQueueCommand creates a command to dequeue the given order.
func NewRemoveFromQueueCommand(orderID kernel.UUID) (RemoveFromQueueCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RemoveFromQueueCommand{}, err
	}

	return RemoveFromQueueCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromQueueCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromQueueCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to dequeue.
func (c RemoveFromQueueCommand) OrderID() kernel.UUID {
	return c.orderID
}
