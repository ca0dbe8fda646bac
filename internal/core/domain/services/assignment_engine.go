package services

import (
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/pkg/errs"
)

// AssignmentEngine is the single authority over the Order↔Vehicle binding.
// It validates a vehicle selection against the order's requirement and
// commits the assignment by transitioning both sides together; callers
// must persist order and vehicles in one transaction so the binding never
// half-applies.
//
// Key responsibilities:
//   - Deriving the vehicle requirement for an order (proposal)
//   - Validating a dispatcher's selection (counts, types, availability)
//   - Committing the assignment atomically across both aggregates
//
// Example usage:
//
//	engine := NewAssignmentEngine(calculator)
//	req, _ := engine.ProposeAssignment(order)
//	// dispatcher picks req.Mixers mixers (+ pump if req.Pump == 1) ...
//	if err := engine.CommitAssignment(order, selected, time.Now()); err != nil {
//	    // ValidationError: selection does not match the requirement
//	    // ConflictError: a vehicle was taken since the proposal
//	}
type AssignmentEngine struct {
	calculator VehicleRequirementCalculator
}

// NewAssignmentEngine creates an engine using the given requirement
// calculator.
func NewAssignmentEngine(calculator VehicleRequirementCalculator) AssignmentEngine {
	return AssignmentEngine{calculator: calculator}
}

// ProposeAssignment returns the vehicle requirement for the order. It
// carries no authority: the requirement drives selection UI and is
// re-validated at commit time.
func (e AssignmentEngine) ProposeAssignment(o *order.Order) (VehicleRequirement, error) {
	if err := o.Validate(); err != nil {
		return VehicleRequirement{}, err
	}
	if err := o.ValidateAssign(); err != nil {
		return VehicleRequirement{}, err
	}
	return e.calculator.Calculate(o)
}

// ValidateSelection checks a proposed vehicle set against a requirement:
// exactly requirement.Mixers distinct mixers, exactly one pump iff the
// requirement calls for one, and every vehicle currently available.
// A vehicle already bound to this very order is exempt from the
// availability check (it is part of the pending transaction) but still
// counts once.
//
// Count/type/duplicate violations return a validation error; an
// unavailable vehicle returns a conflict error, signalling the caller to
// refresh its fleet view.
func (e AssignmentEngine) ValidateSelection(
	o *order.Order,
	requirement VehicleRequirement,
	selected []*vehicle.Vehicle,
) error {
	seen := make(map[kernel.UUID]struct{}, len(selected))
	mixers, pumps := 0, 0

	for _, v := range selected {
		if err := v.Validate(); err != nil {
			return err
		}
		if _, dup := seen[v.ID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("selection",
				fmt.Errorf("vehicle %s selected twice", v.ID()))
		}
		seen[v.ID()] = struct{}{}

		switch v.Type() {
		case vehicle.TypeMixer:
			mixers++
		case vehicle.TypePump:
			pumps++
		}

		if !v.IsAvailable() && !servesOrder(v, o.ID()) {
			return errs.NewConflictErrorWithCause("vehicleId", v.ID().String(),
				fmt.Errorf("vehicle is %s, not available", v.Status()))
		}
	}

	if mixers != requirement.Mixers {
		return errs.NewValueIsInvalidErrorWithCause("selection",
			fmt.Errorf("order needs %d mixers, %d selected", requirement.Mixers, mixers))
	}
	if pumps != requirement.Pump {
		return errs.NewValueIsInvalidErrorWithCause("selection",
			fmt.Errorf("order needs %d pump(s), %d selected", requirement.Pump, pumps))
	}

	return nil
}

// CommitAssignment binds the selected vehicles to the order and
// transitions both sides: order to en_route (clearing any queue slot),
// every vehicle to en_route with its order binding set. Availability is
// re-checked here against the aggregates passed in, never trusted from
// the earlier proposal read, so a vehicle grabbed by a concurrent
// dispatcher surfaces as a conflict with zero mutation.
//
// The caller owns persistence: both aggregates must be written within one
// transaction, and a version conflict on any vehicle must roll back the
// whole commit.
func (e AssignmentEngine) CommitAssignment(
	o *order.Order,
	selected []*vehicle.Vehicle,
	now time.Time,
) error {
	requirement, err := e.ProposeAssignment(o)
	if err != nil {
		return err
	}

	if err = e.ValidateSelection(o, requirement, selected); err != nil {
		return err
	}

	vehicleIDs := make([]kernel.UUID, 0, len(selected))
	for _, v := range selected {
		if err = v.Assign(o.ID()); err != nil {
			return err
		}
		vehicleIDs = append(vehicleIDs, v.ID())
	}

	return o.Assign(vehicleIDs, now)
}

func servesOrder(v *vehicle.Vehicle, orderID kernel.UUID) bool {
	current := v.CurrentOrderID()
	return current != nil && current.IsEqual(orderID)
}
