package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/pkg/guard"
)

var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand registers a new fleet vehicle. Mixers carry a
// positive per-trip capacity; pumps carry none.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID     kernel.UUID
	vehicleNumber string
	driverName    string
	vehicleType   vehicle.Type
	capacity      float64

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a fleet vehicle.
// vehicleType is parsed from its wire form ("mixer" or "pump"); capacity
// rules per type are enforced by the aggregate on creation.
func NewCreateVehicleCommand(
	vehicleID kernel.UUID,
	vehicleNumber string,
	driverName string,
	vehicleType string,
	capacity float64,
) (CreateVehicleCommand, error) {
	parsedType, err := vehicle.TypeFromString(vehicleType)
	if err != nil {
		return CreateVehicleCommand{}, err
	}

	if err = vehicleID.Validate(); err != nil {
		return CreateVehicleCommand{}, err
	}

	return CreateVehicleCommand{
		vehicleID:     vehicleID,
		vehicleNumber: vehicleNumber,
		driverName:    driverName,
		vehicleType:   parsedType,
		capacity:      capacity,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the unique identifier for the vehicle.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// VehicleNumber returns the human-readable plate/callsign.
func (c CreateVehicleCommand) VehicleNumber() string {
	return c.vehicleNumber
}

// DriverName returns the assigned driver's name.
func (c CreateVehicleCommand) DriverName() string {
	return c.driverName
}

// VehicleType returns whether the vehicle is a mixer or a pump.
func (c CreateVehicleCommand) VehicleType() vehicle.Type {
	return c.vehicleType
}

// Capacity returns cubic meters per trip for mixers, 0 for pumps.
func (c CreateVehicleCommand) Capacity() float64 {
	return c.capacity
}
