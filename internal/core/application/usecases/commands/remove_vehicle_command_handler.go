package commands

import (
	"context"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// RemoveVehicleCommandHandler retires vehicles from the fleet. A vehicle
// mid-delivery cannot be removed; it must finish its cycle first.
type RemoveVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewRemoveVehicleCommandHandler creates a handler for fleet retirement.
func NewRemoveVehicleCommandHandler(uowFactory VehicleUoWFactory) RemoveVehicleCommandHandler {
	return RemoveVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the vehicle, refuses removal mid-delivery with a conflict
// error and deletes it otherwise.
func (h RemoveVehicleCommandHandler) Handle(ctx context.Context, command RemoveVehicleCommand) error {
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

	vehiclesRepo := uow.VehicleRepository()

	retiredVehicle, err := vehiclesRepo.Get(ctx, command.VehicleID())
	if err != nil {
		return err
	}

	if retiredVehicle.Status().IsMidDelivery() {
		return errs.NewConflictErrorWithCause("vehicleId", command.VehicleID().String(),
			fmt.Errorf("vehicle is %s, cannot be removed mid-delivery", retiredVehicle.Status()))
	}

	if err = vehiclesRepo.Delete(ctx, command.VehicleID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
