package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// CreateOrderCommandHandler processes order intake. It draws the next
// sequential order number and persists a fresh pending order.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle validates the command, builds the order aggregate and persists it.
// The order number is drawn inside the same transaction as the insert so
// numbers stay sequential under concurrent intake.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	siteContact, err := order.NewContact(command.SiteContactName(), command.SiteContactPhone())
	if err != nil {
		return err
	}

	var supervisor *order.Contact
	if command.SupervisorName() != "" {
		contact, contactErr := order.NewContact(command.SupervisorName(), command.SupervisorPhone())
		if contactErr != nil {
			return contactErr
		}
		supervisor = &contact
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	orderNumber, err := ordersRepo.NextOrderNumber(ctx)
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		command.OrderID(),
		orderNumber,
		command.CompanyName(),
		siteContact,
		supervisor,
		command.Quantity(),
		command.Grade(),
		command.Address(),
		command.DeliveryTime(),
		command.PumpRequired(),
		command.Notes(),
		command.CreatedAt(),
	)
	if err != nil {
		return err
	}

	if err = ordersRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
