package commands

import (
	"context"
)

// RejectOrderCommandHandler processes order rejection. Only pending orders
// can be rejected; anything later in the lifecycle fails with an invalid
// transition error.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, rejects it and persists the terminal state.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, command RejectOrderCommand) error {
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

	rejectedOrder, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = rejectedOrder.Reject(); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, rejectedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
