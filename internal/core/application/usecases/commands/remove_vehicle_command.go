package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRemoveVehicleCommandIsNotConstructed = errors.New(
	"RemoveVehicleCommand must be created via NewRemoveVehicleCommand constructor",
)

// RemoveVehicleCommand retires a vehicle from the fleet.
type RemoveVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveVehicleCommand creates a command to retire the given vehicle.
func NewRemoveVehicleCommand(vehicleID kernel.UUID) (RemoveVehicleCommand, error) {
	if err := vehicleID.Validate(); err != nil {
		return RemoveVehicleCommand{}, err
	}

	return RemoveVehicleCommand{
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRemoveVehicleCommandIsNotConstructed)
}

// VehicleID returns the identifier of the vehicle to retire.
func (c RemoveVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}
