package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle
// aggregates. Update implementations must apply an optimistic-concurrency
// check on the aggregate version and return an errs.VersionIsInvalidError
// when the stored row changed underneath the caller, so two dispatchers
// can never double-book the same vehicle.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, vehicle *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate,
	// guarded by the aggregate version.
	Update(ctx context.Context, vehicle *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such vehicle exists.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAll retrieves the whole fleet.
	GetAll(ctx context.Context) ([]*vehicle.Vehicle, error)

	// GetAllAvailable retrieves vehicles in available status, the
	// candidate set for assignment.
	GetAllAvailable(ctx context.Context) ([]*vehicle.Vehicle, error)

	// Delete removes a vehicle from the fleet. Legality (not
	// mid-delivery) is the caller's responsibility.
	Delete(ctx context.Context, id kernel.UUID) error
}
