// Package vehiclerepo provides the GORM persistence adapter for the
// vehicle aggregate. Updates are guarded by the aggregate version so two
// dispatchers can never double-book the same vehicle.
package vehiclerepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates.
type VehicleDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleNumber  string    `gorm:"uniqueIndex"`
	DriverName     string
	VehicleType    string
	Capacity       float64
	Status         string     `gorm:"index"`
	CurrentOrderID *uuid.UUID `gorm:"type:uuid;index"`
	Version        int
}

// TableName specifies the database table name for vehicle entities.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database
// representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	var currentOrderID *uuid.UUID
	if orderID := aggregate.CurrentOrderID(); orderID != nil {
		raw := orderID.Bytes()
		currentOrderID = &raw
	}

	return VehicleDTO{
		ID:             aggregate.ID().Bytes(),
		VehicleNumber:  aggregate.VehicleNumber(),
		DriverName:     aggregate.DriverName(),
		VehicleType:    aggregate.Type().String(),
		Capacity:       aggregate.Capacity(),
		Status:         aggregate.Status().String(),
		CurrentOrderID: currentOrderID,
		Version:        aggregate.Version(),
	}
}

// toDomain converts a database DTO back to a vehicle domain aggregate via
// RestoreVehicle.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleType, err := vehicle.TypeFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	status, err := vehicle.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		orderID, orderIDErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderIDErr != nil {
			return nil, orderIDErr
		}
		currentOrderID = &orderID
	}

	return vehicle.RestoreVehicle(
		id,
		dto.VehicleNumber,
		dto.DriverName,
		vehicleType,
		dto.Capacity,
		status,
		currentOrderID,
		dto.Version,
	)
}
