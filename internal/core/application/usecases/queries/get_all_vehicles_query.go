package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAllVehiclesQueryIsNotConstructed = errors.New(
	"GetAllVehiclesQuery must be created via NewGetAllVehiclesQuery constructor",
)

// GetAllVehiclesQuery retrieves the whole fleet for the fleet board.
type GetAllVehiclesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllVehiclesQuery creates a query for the fleet list.
func NewGetAllVehiclesQuery() GetAllVehiclesQuery {
	return GetAllVehiclesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllVehiclesQueryIsNotConstructed)
}

// GetAllVehiclesQueryResponse is one fleet vehicle with its operational
// state and, when mid-delivery, the order it serves.
type GetAllVehiclesQueryResponse struct {
	ID             kernel.UUID
	VehicleNumber  string
	DriverName     string
	VehicleType    string
	Capacity       float64
	Status         string
	CurrentOrderID *kernel.UUID
}
