package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// MoveQueuedOrderCommandHandler reprioritizes an order within the waiting
// queue. Both sides of the swap are persisted in one transaction, so
// positions stay pairwise distinct no matter where the operation fails.
type MoveQueuedOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMoveQueuedOrderCommandHandler creates a handler for queue moves.
func NewMoveQueuedOrderCommandHandler(uowFactory OrderUoWFactory) MoveQueuedOrderCommandHandler {
	return MoveQueuedOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the live queue, swaps the order with its neighbour and
// persists both. Returns services.ErrOrderNotInQueue when the order is not
// queued, services.ErrOrderAtQueueHead / ErrOrderAtQueueTail for boundary
// moves.
func (h MoveQueuedOrderCommandHandler) Handle(ctx context.Context, command MoveQueuedOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	queued, err := ordersRepo.GetAllQueued(ctx)
	if err != nil {
		return err
	}

	var target *order.Order
	for _, q := range queued {
		if q.ID().IsEqual(command.OrderID()) {
			target = q
			break
		}
	}
	if target == nil {
		return services.ErrOrderNotInQueue
	}

	neighbour, err := services.NewWaitingQueue().Move(target, queued, command.Direction())
	if err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, target); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, neighbour); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
