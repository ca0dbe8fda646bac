package vehicle

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrVehicleNumberIsRequired is returned when creating a vehicle without a plate/number.
	ErrVehicleNumberIsRequired = errs.NewValueIsRequiredError("vehicleNumber")
	// ErrDriverNameIsRequired is returned when creating a vehicle without a driver name.
	ErrDriverNameIsRequired = errs.NewValueIsRequiredError("driverName")
)

// Vehicle represents a fleet asset: a concrete mixer or a pump.
// It is an aggregate root that manages vehicle identity, its delivery
// cycle, duty state, and the binding to the order it currently serves.
//
// Business rules:
//   - A mixer has a positive capacity (cubic meters per trip); a pump has
//     capacity zero, since it is a capability rather than a volume carrier
//   - At most one active order per vehicle; the order binding is set only
//     through Assign and cleared when the vehicle completes its return
//   - Duty toggles (maintenance/off_duty) are illegal mid-delivery
//
// The version field supports optimistic concurrency in persistence: two
// dispatchers racing to book the same vehicle produce one winner and one
// version conflict, never a double booking.
type Vehicle struct {
	// id uniquely identifies the vehicle
	id kernel.UUID
	// vehicleNumber is the human-readable plate/callsign, e.g. "מיקסר-01"
	vehicleNumber string
	// driverName is the assigned driver
	driverName string
	// vehicleType is mixer or pump
	vehicleType Type
	// capacity is cubic meters per trip for mixers, 0 for pumps
	capacity float64
	// status is the current operational state
	status Status
	// currentOrderID references the order being served, nil when free
	currentOrderID *kernel.UUID
	// version is the persistence version for optimistic concurrency
	version int
	// guard ensures the vehicle was properly constructed
	guard guard.ConstructorGuard
}

// NewVehicle creates a new Vehicle in Available status with validation.
// Mixers require a positive capacity; pumps must have capacity zero.
func NewVehicle(
	id kernel.UUID,
	vehicleNumber string,
	driverName string,
	vehicleType Type,
	capacity float64,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setVehicleNumber(vehicleNumber),
		vehicle.setDriverName(driverName),
		vehicle.setTypeAndCapacity(vehicleType, capacity),
	); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage,
// including its operational state, order binding and persistence version.
func RestoreVehicle(
	id kernel.UUID,
	vehicleNumber string,
	driverName string,
	vehicleType Type,
	capacity float64,
	status Status,
	currentOrderID *kernel.UUID,
	version int,
) (*Vehicle, error) {
	vehicle := &Vehicle{
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setVehicleNumber(vehicleNumber),
		vehicle.setDriverName(driverName),
		vehicle.setTypeAndCapacity(vehicleType, capacity),
		vehicle.setStatus(status),
		vehicle.setCurrentOrderID(currentOrderID),
	); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// Validate ensures the Vehicle was created through a factory method.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// VehicleNumber returns the human-readable plate/callsign.
func (v *Vehicle) VehicleNumber() string {
	return v.vehicleNumber
}

// DriverName returns the assigned driver's name.
func (v *Vehicle) DriverName() string {
	return v.driverName
}

// Type returns whether the vehicle is a mixer or a pump.
func (v *Vehicle) Type() Type {
	return v.vehicleType
}

// Capacity returns cubic meters per trip for mixers, 0 for pumps.
func (v *Vehicle) Capacity() float64 {
	return v.capacity
}

// Status returns the current operational state.
func (v *Vehicle) Status() Status {
	return v.status
}

// CurrentOrderID returns the order the vehicle is serving, nil when free.
func (v *Vehicle) CurrentOrderID() *kernel.UUID {
	return v.currentOrderID
}

// Version returns the persistence version used for optimistic concurrency.
func (v *Vehicle) Version() int {
	return v.version
}

// IsAvailable reports whether the vehicle can be selected for assignment.
func (v *Vehicle) IsAvailable() bool {
	return v.status == Available
}

// Assign books the vehicle for an order: Available -> EnRoute with the
// order binding set. Any other starting status is a conflict, not a plain
// validation failure: the caller raced another dispatcher.
func (v *Vehicle) Assign(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	newStatus, err := v.status.Assign()
	if err != nil {
		return errs.NewConflictErrorWithCause("vehicleId", v.id.String(), err)
	}

	v.status = newStatus
	v.currentOrderID = &orderID
	return nil
}

// ArriveAtSite records driver-reported arrival at the delivery site.
func (v *Vehicle) ArriveAtSite() error {
	newStatus, err := v.status.ArriveAtSite()
	if err != nil {
		return err
	}

	v.status = newStatus
	return nil
}

// StartPouring records the start of the discharge.
func (v *Vehicle) StartPouring() error {
	newStatus, err := v.status.StartPouring()
	if err != nil {
		return err
	}

	v.status = newStatus
	return nil
}

// StartReturning records that the pour finished and the vehicle is heading
// back to base. The order binding stays in place until the vehicle is back.
func (v *Vehicle) StartReturning() error {
	newStatus, err := v.status.StartReturning()
	if err != nil {
		return err
	}

	v.status = newStatus
	return nil
}

// CompleteReturn records arrival back at base: Returning -> Available.
// The order binding is cleared as part of this transition, so a freed
// vehicle never appears to still be serving a finished order.
func (v *Vehicle) CompleteReturn() error {
	newStatus, err := v.status.CompleteReturn()
	if err != nil {
		return err
	}

	v.status = newStatus
	v.currentOrderID = nil
	return nil
}

// SetDuty toggles the vehicle between Available, Maintenance and OffDuty.
// Illegal while the vehicle is mid-delivery.
func (v *Vehicle) SetDuty(target Status) error {
	newStatus, err := v.status.SetDuty(target)
	if err != nil {
		return err
	}

	v.status = newStatus
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setVehicleNumber(vehicleNumber string) error {
	if vehicleNumber == "" {
		return ErrVehicleNumberIsRequired
	}
	v.vehicleNumber = vehicleNumber
	return nil
}

func (v *Vehicle) setDriverName(driverName string) error {
	if driverName == "" {
		return ErrDriverNameIsRequired
	}
	v.driverName = driverName
	return nil
}

func (v *Vehicle) setTypeAndCapacity(vehicleType Type, capacity float64) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}

	switch vehicleType {
	case TypeMixer:
		if capacity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("capacity",
				fmt.Errorf("%g is not greater than 0 for a mixer", capacity))
		}
	case TypePump:
		if capacity != 0 {
			return errs.NewValueIsInvalidErrorWithCause("capacity",
				fmt.Errorf("a pump carries no volume, got %g", capacity))
		}
	}

	v.vehicleType = vehicleType
	v.capacity = capacity
	return nil
}

func (v *Vehicle) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	v.status = status
	return nil
}

func (v *Vehicle) setCurrentOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	if !v.status.IsMidDelivery() {
		return errs.NewValueIsInvalidErrorWithCause("currentOrderId",
			fmt.Errorf("%s is not a valid status to be serving an order", v.status))
	}

	id := *orderID
	v.currentOrderID = &id
	return nil
}
