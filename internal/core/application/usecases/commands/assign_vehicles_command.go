package commands

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrAssignVehiclesCommandIsNotConstructed = errors.New(
	"AssignVehiclesCommand must be created via NewAssignVehiclesCommand constructor",
)

// AssignVehiclesCommand commits a dispatcher's vehicle selection to an
// order. The selection must match the order's requirement exactly; the
// assignment engine re-validates everything at commit time.
//
// Example:
//
//	cmd, err := NewAssignVehiclesCommand(orderID, []kernel.UUID{mixer1, mixer2, pump}, time.Now())
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	var conflict *errs.ConflictError
//	if errors.As(err, &conflict) {
//	    // a vehicle was taken since the fleet view was rendered
//	}
type AssignVehiclesCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	vehicleIDs []kernel.UUID
	now        time.Time

	guard guard.ConstructorGuard
}

// NewAssignVehiclesCommand creates a command to bind the selected vehicles
// to the order. now is recorded as the order's execution start time.
func NewAssignVehiclesCommand(
	orderID kernel.UUID,
	vehicleIDs []kernel.UUID,
	now time.Time,
) (AssignVehiclesCommand, error) {
	command := AssignVehiclesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setVehicleIDs(vehicleIDs),
		command.setNow(now),
	); err != nil {
		return AssignVehiclesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignVehiclesCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehiclesCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to dispatch.
func (c AssignVehiclesCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VehicleIDs returns a copy of the selected vehicle identifiers.
func (c AssignVehiclesCommand) VehicleIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.vehicleIDs))
	copy(ids, c.vehicleIDs)
	return ids
}

// Now returns the timestamp recorded as the execution start.
func (c AssignVehiclesCommand) Now() time.Time {
	return c.now
}

func (c *AssignVehiclesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignVehiclesCommand) setVehicleIDs(vehicleIDs []kernel.UUID) error {
	if len(vehicleIDs) == 0 {
		return errs.NewValueIsRequiredError("vehicleIds")
	}

	seen := make(map[kernel.UUID]struct{}, len(vehicleIDs))
	for _, id := range vehicleIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("vehicleIds",
				fmt.Errorf("vehicle %s selected twice", id))
		}
		seen[id] = struct{}{}
	}

	c.vehicleIDs = append([]kernel.UUID(nil), vehicleIDs...)
	return nil
}

func (c *AssignVehiclesCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	c.now = now
	return nil
}
