package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllVehiclesQueryHandler lists the fleet for the fleet board.
type GetAllVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllVehiclesQueryHandler creates a handler for fleet queries.
func NewGetAllVehiclesQueryHandler(db *gorm.DB) GetAllVehiclesQueryHandler {
	return GetAllVehiclesQueryHandler{db: db}
}

// Handle returns every vehicle sorted by vehicle number.
func (h GetAllVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAllVehiclesQuery,
) ([]GetAllVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetAllVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			vehicle_number,
			driver_name,
			vehicle_type,
			capacity,
			status,
			current_order_id
		FROM vehicles
		ORDER BY vehicle_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var vehicleResp GetAllVehiclesQueryResponse
		var id uuid.UUID
		var currentOrderID *uuid.UUID

		err = rows.Scan(
			&id,
			&vehicleResp.VehicleNumber,
			&vehicleResp.DriverName,
			&vehicleResp.VehicleType,
			&vehicleResp.Capacity,
			&vehicleResp.Status,
			&currentOrderID,
		)
		if err != nil {
			return nil, err
		}

		vehicleID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		vehicleResp.ID = vehicleID

		if currentOrderID != nil {
			orderID, orderIDErr := kernel.UUIDFromBytes(currentOrderID[:])
			if orderIDErr != nil {
				return nil, orderIDErr
			}
			vehicleResp.CurrentOrderID = &orderID
		}

		vehicles = append(vehicles, vehicleResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
