package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrSetVehicleDutyCommandIsNotConstructed = errors.New(
	"SetVehicleDutyCommand must be created via NewSetVehicleDutyCommand constructor",
)

// SetVehicleDutyCommand toggles a vehicle between available, maintenance
// and off_duty. Illegal while the vehicle is mid-delivery.
type SetVehicleDutyCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	duty      vehicle.Status

	guard guard.ConstructorGuard
}

// NewSetVehicleDutyCommand creates a command to change a vehicle's duty
// state. duty is parsed from its wire form and must be one of "available",
// "maintenance" or "off_duty".
func NewSetVehicleDutyCommand(vehicleID kernel.UUID, duty string) (SetVehicleDutyCommand, error) {
	if err := vehicleID.Validate(); err != nil {
		return SetVehicleDutyCommand{}, err
	}

	parsedDuty, err := vehicle.StatusFromString(duty)
	if err != nil {
		return SetVehicleDutyCommand{}, err
	}
	if parsedDuty != vehicle.Available && parsedDuty != vehicle.Maintenance && parsedDuty != vehicle.OffDuty {
		return SetVehicleDutyCommand{}, errs.NewValueIsInvalidError("duty status: " + duty)
	}

	return SetVehicleDutyCommand{
		vehicleID: vehicleID,
		duty:      parsedDuty,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetVehicleDutyCommand) Validate() error {
	return c.guard.Validate(ErrSetVehicleDutyCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to toggle.
func (c SetVehicleDutyCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Duty returns the target duty state.
func (c SetVehicleDutyCommand) Duty() vehicle.Status {
	return c.duty
}
