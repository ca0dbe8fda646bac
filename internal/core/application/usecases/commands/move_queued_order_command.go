package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/guard"
)

var ErrMoveQueuedOrderCommandIsNotConstructed = errors.New(
	"MoveQueuedOrderCommand must be created via NewMoveQueuedOrderCommand constructor",
)

// MoveQueuedOrderCommand swaps a queued order with its neighbour in the
// waiting queue, one slot up or down. Head-up and tail-down moves are
// refused rather than silently ignored.
type MoveQueuedOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	direction services.MoveDirection

	guard guard.ConstructorGuard
}

// NewMoveQueuedOrderCommand creates a command to reprioritize a queued
// order. direction is parsed from its wire form ("up" or "down").
func NewMoveQueuedOrderCommand(orderID kernel.UUID, direction string) (MoveQueuedOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MoveQueuedOrderCommand{}, err
	}

	moveDirection := services.MoveDirection(direction)
	if err := moveDirection.Validate(); err != nil {
		return MoveQueuedOrderCommand{}, err
	}

	return MoveQueuedOrderCommand{
		orderID:   orderID,
		direction: moveDirection,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MoveQueuedOrderCommand) Validate() error {
	return c.guard.Validate(ErrMoveQueuedOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the queued order to move.
func (c MoveQueuedOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Direction returns which neighbour the order swaps with.
func (c MoveQueuedOrderCommand) Direction() services.MoveDirection {
	return c.direction
}
