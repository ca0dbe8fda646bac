package commands

import (
	"context"

	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/domain/services"
)

// AssignVehiclesCommandHandler commits a manual vehicle selection to an
// order. Both sides of the binding are written in one transaction; an
// optimistic-concurrency failure on any vehicle rolls the whole commit
// back, so a raced dispatcher sees a conflict instead of a double booking.
type AssignVehiclesCommandHandler struct {
	uowFactory UoWFactory
	engine     services.AssignmentEngine
}

// NewAssignVehiclesCommandHandler creates a handler for assignment commits.
func NewAssignVehiclesCommandHandler(
	uowFactory UoWFactory,
	engine services.AssignmentEngine,
) AssignVehiclesCommandHandler {
	return AssignVehiclesCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle loads the order and every selected vehicle, commits the
// assignment through the engine and persists all aggregates together.
func (h AssignVehiclesCommandHandler) Handle(ctx context.Context, command AssignVehiclesCommand) error {
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
	vehiclesRepo := uow.VehicleRepository()

	dispatchedOrder, err := ordersRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	selected := make([]*vehicle.Vehicle, 0, len(command.VehicleIDs()))
	for _, vehicleID := range command.VehicleIDs() {
		selectedVehicle, getErr := vehiclesRepo.Get(ctx, vehicleID)
		if getErr != nil {
			return getErr
		}
		selected = append(selected, selectedVehicle)
	}

	if err = h.engine.CommitAssignment(dispatchedOrder, selected, command.Now()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, dispatchedOrder); err != nil {
		return err
	}

	for _, assignedVehicle := range selected {
		if err = vehiclesRepo.Update(ctx, assignedVehicle); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
