package commands

import (
	"context"
)

// SetVehicleDutyCommandHandler toggles a vehicle's duty state.
type SetVehicleDutyCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewSetVehicleDutyCommandHandler creates a handler for duty toggles.
func NewSetVehicleDutyCommandHandler(uowFactory VehicleUoWFactory) SetVehicleDutyCommandHandler {
	return SetVehicleDutyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the vehicle, applies the duty change and persists it.
// Mid-delivery vehicles refuse the toggle with an invalid transition error.
func (h SetVehicleDutyCommandHandler) Handle(ctx context.Context, command SetVehicleDutyCommand) error {
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

	dutyVehicle, err := vehiclesRepo.Get(ctx, command.VehicleID())
	if err != nil {
		return err
	}

	if err = dutyVehicle.SetDuty(command.Duty()); err != nil {
		return err
	}

	if err = vehiclesRepo.Update(ctx, dutyVehicle); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
