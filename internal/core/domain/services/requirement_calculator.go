package services

import (
	"fmt"
	"math"
	"strings"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// DefaultMaxMixerCapacity is the planning capacity of a single mixer trip
// in cubic meters. The physical fleet has 10 and 12 m³ trucks; dispatch
// plans against the conservative 8 m³ figure.
const DefaultMaxMixerCapacity = 8.0

// VehicleRequirement describes how many vehicles an order needs.
// It is derived, never persisted: callers recompute it from the order
// whenever they need it.
type VehicleRequirement struct {
	// Mixers is the number of mixer trucks needed, always at least 1.
	Mixers int
	// Pump is 1 if the order requires a pump on site, 0 otherwise.
	Pump int
	// Total is Mixers + Pump.
	Total int
	// Breakdown is the human-readable summary shown to dispatchers,
	// e.g. "3 מיקסרים + משאבה".
	Breakdown string
}

// VehicleRequirementCalculator computes the vehicle demand of an order.
// It is a pure domain service: deterministic and side-effect-free, safe to
// call repeatedly on every render or poll without drift.
type VehicleRequirementCalculator struct {
	maxMixerCapacity float64
}

// NewVehicleRequirementCalculator creates a calculator planning against the
// given per-trip mixer capacity in cubic meters.
func NewVehicleRequirementCalculator(maxMixerCapacity float64) (VehicleRequirementCalculator, error) {
	if maxMixerCapacity <= 0 {
		return VehicleRequirementCalculator{}, errs.NewValueIsInvalidErrorWithCause("maxMixerCapacity",
			fmt.Errorf("%g is not greater than 0", maxMixerCapacity))
	}
	return VehicleRequirementCalculator{maxMixerCapacity: maxMixerCapacity}, nil
}

// Calculate returns the vehicle requirement for the order:
// ceil(quantity / capacity) mixers, plus one pump when the order calls for
// it. Quantity positivity is an order construction invariant, so there are
// no error cases beyond an unconstructed order.
func (c VehicleRequirementCalculator) Calculate(o *order.Order) (VehicleRequirement, error) {
	if err := o.Validate(); err != nil {
		return VehicleRequirement{}, err
	}

	mixers := int(math.Ceil(o.Quantity() / c.maxMixerCapacity))
	pump := 0
	if o.PumpRequired() {
		pump = 1
	}

	return VehicleRequirement{
		Mixers:    mixers,
		Pump:      pump,
		Total:     mixers + pump,
		Breakdown: buildBreakdown(mixers, pump),
	}, nil
}

func buildBreakdown(mixers, pump int) string {
	parts := make([]string, 0, 2)
	if mixers == 1 {
		parts = append(parts, "1 מיקסר")
	} else if mixers > 1 {
		parts = append(parts, fmt.Sprintf("%d מיקסרים", mixers))
	}
	if pump > 0 {
		parts = append(parts, "משאבה")
	}
	return strings.Join(parts, " + ")
}
