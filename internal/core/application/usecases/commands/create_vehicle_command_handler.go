package commands

import (
	"context"

	"dispatch/internal/core/domain/model/vehicle"
)

// CreateVehicleCommandHandler registers new fleet vehicles.
type CreateVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for fleet registration.
func NewCreateVehicleCommandHandler(uowFactory VehicleUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the vehicle aggregate in available status and persists it.
func (h CreateVehicleCommandHandler) Handle(ctx context.Context, command CreateVehicleCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newVehicle, err := vehicle.NewVehicle(
		command.VehicleID(),
		command.VehicleNumber(),
		command.DriverName(),
		command.VehicleType(),
		command.Capacity(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, newVehicle); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
