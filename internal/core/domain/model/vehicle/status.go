package vehicle

import (
	"dispatch/internal/pkg/errs"
)

// Status represents the operational state of a fleet vehicle.
//
// Delivery cycle:
//
//	Available ──> EnRoute ──> AtSite ──> Pouring ──> Returning ──> Available
//
// Duty toggles (fleet management):
//
//	Available <──> Maintenance
//	Available <──> OffDuty
//
// Duty toggles are only legal while the vehicle is not mid-delivery.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the vehicle is at base and can be assigned.
	Available

	// EnRoute means the vehicle is driving to a delivery site.
	EnRoute

	// AtSite means the vehicle arrived at the delivery site.
	AtSite

	// Pouring means the vehicle is discharging concrete.
	Pouring

	// Returning means the vehicle is driving back to base after the pour.
	Returning

	// Maintenance means the vehicle is pulled from service for repairs.
	Maintenance

	// OffDuty means the vehicle (or its driver) is not on shift.
	OffDuty
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Available:   "available",
		EnRoute:     "en_route",
		AtSite:      "at_site",
		Pouring:     "pouring",
		Returning:   "returning",
		Maintenance: "maintenance",
		OffDuty:     "off_duty",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:   "available",
		EnRoute:     "en_route",
		AtSite:      "at_site",
		Pouring:     "pouring",
		Returning:   "returning",
		Maintenance: "maintenance",
		OffDuty:     "off_duty",
	}
}

// Validate checks if the Status value is one of the defined vehicle statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errs.NewValueIsOutOfRangeError("status", int(s), int(Available), int(OffDuty)))
	}
	return nil
}

// String returns the wire/storage name of the status, e.g. "en_route".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a stored status string back into a Status.
func StatusFromString(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status: " + raw)
}

// IsMidDelivery reports whether the vehicle is currently executing a
// delivery. Duty toggles and removal are illegal mid-delivery.
func (s Status) IsMidDelivery() bool {
	switch s {
	case EnRoute, AtSite, Pouring, Returning:
		return true
	default:
		return false
	}
}

// Assign transitions the status to EnRoute. Legal only from Available.
// Callers must treat a failure here as an assignment conflict: the vehicle
// was taken (or pulled from service) between proposal and commit.
func (s Status) Assign() (Status, error) {
	if s != Available {
		return Unknown, errs.NewInvalidTransitionError("vehicle", s.String(), EnRoute.String())
	}
	return EnRoute, nil
}

// ArriveAtSite transitions the status to AtSite. Legal only from EnRoute.
func (s Status) ArriveAtSite() (Status, error) {
	if s != EnRoute {
		return Unknown, errs.NewInvalidTransitionError("vehicle", s.String(), AtSite.String())
	}
	return AtSite, nil
}

// StartPouring transitions the status to Pouring. Legal only from AtSite.
func (s Status) StartPouring() (Status, error) {
	if s != AtSite {
		return Unknown, errs.NewInvalidTransitionError("vehicle", s.String(), Pouring.String())
	}
	return Pouring, nil
}

// StartReturning transitions the status to Returning. Legal only from
// Pouring: the pour is over and the vehicle heads back to base.
func (s Status) StartReturning() (Status, error) {
	if s != Pouring {
		return Unknown, errs.NewInvalidTransitionError("vehicle", s.String(), Returning.String())
	}
	return Returning, nil
}

// CompleteReturn transitions the status back to Available. Legal only from
// Returning.
func (s Status) CompleteReturn() (Status, error) {
	if s != Returning {
		return Unknown, errs.NewInvalidTransitionError("vehicle", s.String(), Available.String())
	}
	return Available, nil
}

// SetDuty switches between Available, Maintenance and OffDuty. Legal only
// while the vehicle is not mid-delivery.
func (s Status) SetDuty(target Status) (Status, error) {
	if target != Available && target != Maintenance && target != OffDuty {
		return Unknown, errs.NewValueIsInvalidError("duty status: " + target.String())
	}
	if s.IsMidDelivery() {
		return Unknown, errs.NewInvalidTransitionError("vehicle", s.String(), target.String())
	}
	return target, nil
}
