package commands

import (
	"context"

	"dispatch/internal/core/domain/services"
)

// RemoveFromQueueCommandHandler takes an order out of the waiting queue.
type RemoveFromQueueCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveFromQueueCommandHandler creates a handler for queue removal.
func NewRemoveFromQueueCommandHandler(uowFactory OrderUoWFactory) RemoveFromQueueCommandHandler {
	return RemoveFromQueueCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, clears its queue slot and persists it back in
// pending status.
func (h RemoveFromQueueCommandHandler) Handle(ctx context.Context, command RemoveFromQueueCommand) error {
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

	queuedOrder, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = services.NewWaitingQueue().Remove(queuedOrder); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, queuedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
