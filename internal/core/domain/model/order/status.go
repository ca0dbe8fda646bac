package order

import (
	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct dispatch workflow.
//
// State transitions:
//
//	Pending ──┬──> EnRoute ──> AtSite ──> Pouring ──> Completed
//	          ├──> WaitingForVehicle ──> EnRoute (once vehicles free up)
//	          │            └──> Pending (removed from queue)
//	          └──> Rejected
//
// Completed and Rejected are terminal: no transitions leave them.
//
// Approved and Assigned are legacy values written by earlier revisions of
// the system. They are still accepted when restoring from storage and
// behave like EnRoute for driver-side progress, but nothing writes them
// anymore.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting for a dispatch decision.
	Pending

	// Approved is a deprecated alias of EnRoute kept for stored data
	// written by an earlier revision.
	Approved

	// WaitingForVehicle indicates the order is held in the dispatch queue
	// until enough vehicles become available. Queue position and queued-at
	// are set if and only if the order has this status.
	WaitingForVehicle

	// Assigned is a deprecated alias of EnRoute kept for stored data
	// written by an earlier revision.
	Assigned

	// EnRoute indicates vehicles are bound to the order and on their way
	// to the site. This is the canonical post-commit status.
	EnRoute

	// AtSite indicates the assigned vehicles arrived at the delivery site.
	AtSite

	// Pouring indicates concrete is being discharged at the site.
	Pouring

	// Completed indicates the pour finished. Terminal.
	Completed

	// Rejected indicates the order was refused before dispatch. Terminal.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "unknown",
		Pending:           "pending",
		Approved:          "approved",
		WaitingForVehicle: "waiting_for_vehicle",
		Assigned:          "assigned",
		EnRoute:           "en_route",
		AtSite:            "at_site",
		Pouring:           "pouring",
		Completed:         "completed",
		Rejected:          "rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:           "pending",
		Approved:          "approved",
		WaitingForVehicle: "waiting_for_vehicle",
		Assigned:          "assigned",
		EnRoute:           "en_route",
		AtSite:            "at_site",
		Pouring:           "pouring",
		Completed:         "completed",
		Rejected:          "rejected",
	}
}

// Validate checks if the Status value is one of the defined order statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errs.NewValueIsOutOfRangeError("status", int(s), int(Pending), int(Rejected)))
	}
	return nil
}

// String returns the wire/storage name of the status, e.g.
// "waiting_for_vehicle". Implements fmt.Stringer and is safe to call on
// any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a stored status string back into a Status.
// Returns a validation error for strings that name no valid status.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status: " + raw)
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected
}

// IsActive reports whether the order is currently being executed by
// vehicles. Delay alerting only applies to active orders.
func (s Status) IsActive() bool {
	switch s {
	case EnRoute, AtSite, Pouring, Approved, Assigned:
		return true
	default:
		return false
	}
}

// ValidateAssign checks if vehicles may be committed to an order in this
// status, without performing the transition. Assignment is allowed from
// Pending (direct dispatch) and WaitingForVehicle (dispatch from the
// queue).
func (s Status) ValidateAssign() error {
	if s != Pending && s != WaitingForVehicle {
		return errs.NewInvalidTransitionError("order", s.String(), EnRoute.String())
	}
	return nil
}

// Assign transitions the status to EnRoute.
//
// Valid transitions:
//   - Pending -> EnRoute (direct dispatch)
//   - WaitingForVehicle -> EnRoute (dispatch from the queue)
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return Unknown, err
	}
	return EnRoute, nil
}

// Reject transitions the status to Rejected. Legal only from Pending.
func (s Status) Reject() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), Rejected.String())
	}
	return Rejected, nil
}

// Enqueue transitions the status to WaitingForVehicle. Legal only from
// Pending: queued and committed orders cannot be queued again.
func (s Status) Enqueue() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), WaitingForVehicle.String())
	}
	return WaitingForVehicle, nil
}

// Release transitions a queued order back to Pending when it is removed
// from the waiting queue without being dispatched.
func (s Status) Release() (Status, error) {
	if s != WaitingForVehicle {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), Pending.String())
	}
	return Pending, nil
}

// ArriveAtSite transitions the status to AtSite when a driver reports
// arrival. Approved and Assigned are accepted as legacy equivalents of
// EnRoute.
func (s Status) ArriveAtSite() (Status, error) {
	if s != EnRoute && s != Approved && s != Assigned {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), AtSite.String())
	}
	return AtSite, nil
}

// StartPouring transitions the status to Pouring. Legal only from AtSite.
func (s Status) StartPouring() (Status, error) {
	if s != AtSite {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), Pouring.String())
	}
	return Pouring, nil
}

// Complete transitions the status to Completed. Legal only from Pouring:
// the order terminates when the pour ends, one step before the vehicles
// physically return to base.
func (s Status) Complete() (Status, error) {
	if s != Pouring {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), Completed.String())
	}
	return Completed, nil
}
