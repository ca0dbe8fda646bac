package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrReportVehicleProgressCommandIsNotConstructed = errors.New(
	"ReportVehicleProgressCommand must be created via NewReportVehicleProgressCommand constructor",
)

// ProgressEvent is a driver-reported milestone in a vehicle's delivery
// cycle.
type ProgressEvent string

const (
	// EventArrivedAtSite means the vehicle reached the delivery site.
	EventArrivedAtSite ProgressEvent = "arrived_at_site"
	// EventPouringStarted means the discharge began.
	EventPouringStarted ProgressEvent = "pouring_started"
	// EventReturning means the pour finished and the vehicle heads back.
	EventReturning ProgressEvent = "returning"
	// EventReturned means the vehicle is back at base and free again.
	EventReturned ProgressEvent = "returned"
)

// Validate checks the event is one of the defined milestones.
func (e ProgressEvent) Validate() error {
	switch e {
	case EventArrivedAtSite, EventPouringStarted, EventReturning, EventReturned:
		return nil
	default:
		return errs.NewValueIsInvalidError("event: " + string(e))
	}
}

// ReportVehicleProgressCommand records a driver-reported milestone for a
// vehicle and mirrors it onto the order the vehicle is serving.
type ReportVehicleProgressCommand struct { //nolint:recvcheck //using for validation
	vehicleID kernel.UUID
	event     ProgressEvent

	guard guard.ConstructorGuard
}

// NewReportVehicleProgressCommand creates a command to record a delivery
// milestone. event is parsed from its wire form.
func NewReportVehicleProgressCommand(vehicleID kernel.UUID, event string) (ReportVehicleProgressCommand, error) {
	if err := vehicleID.Validate(); err != nil {
		return ReportVehicleProgressCommand{}, err
	}

	progressEvent := ProgressEvent(event)
	if err := progressEvent.Validate(); err != nil {
		return ReportVehicleProgressCommand{}, err
	}

	return ReportVehicleProgressCommand{
		vehicleID: vehicleID,
		event:     progressEvent,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportVehicleProgressCommand) Validate() error {
	return c.guard.Validate(ErrReportVehicleProgressCommandIsNotConstructed)
}

// VehicleID returns the identifier of the reporting vehicle.
func (c ReportVehicleProgressCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// Event returns the reported milestone.
func (c ReportVehicleProgressCommand) Event() ProgressEvent {
	return c.event
}
