package commands

import (
	"context"

	"dispatch/internal/core/domain/services"
)

// EnqueueOrderCommandHandler places an order into the waiting queue.
// The new position is computed against the live queue inside the
// transaction, so concurrent enqueues never share a slot.
type EnqueueOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewEnqueueOrderCommandHandler creates a handler for queueing orders.
func NewEnqueueOrderCommandHandler(uowFactory OrderUoWFactory) EnqueueOrderCommandHandler {
	return EnqueueOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order and the current queue, appends the order at the
// back and persists it.
func (h EnqueueOrderCommandHandler) Handle(ctx context.Context, command EnqueueOrderCommand) error {
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

	queued, err := ordersRepo.GetAllQueued(ctx)
	if err != nil {
		return err
	}

	if err = services.NewWaitingQueue().Enqueue(queuedOrder, queued, command.Now()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, queuedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
