package services

import (
	"fmt"
	"math"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// Estimation constants for a delivery round trip, in minutes.
const (
	// DefaultTravelTimeMinutes is the average drive to a site.
	DefaultTravelTimeMinutes = 20
	// DefaultPouringTimePerM3Minutes is the discharge time per cubic meter.
	DefaultPouringTimePerM3Minutes = 5
	// DefaultReturnTimeMinutes is the average drive back to base.
	DefaultReturnTimeMinutes = 20
	// DefaultWarningThresholdMinutes is the delay past the estimated end
	// that raises a warning.
	DefaultWarningThresholdMinutes = 15
	// DefaultCriticalThresholdMinutes is the delay past the estimated end
	// that raises a critical alert.
	DefaultCriticalThresholdMinutes = 30
)

// AlertLevel classifies how late an in-flight order is running.
type AlertLevel string

const (
	AlertNone     AlertLevel = "none"
	AlertWarning  AlertLevel = "warning"
	AlertCritical AlertLevel = "critical"
)

// DispatchAnalysis is the analyzer's verdict on a single order.
type DispatchAnalysis struct {
	// EstimatedDurationMinutes is travel + pour + return for this order.
	EstimatedDurationMinutes float64
	// EstimatedEndTime is the observed (or assumed) start plus the duration.
	EstimatedEndTime time.Time
	// AlertLevel is none, warning or critical.
	AlertLevel AlertLevel
	// AlertMessage is the dispatcher-facing delay message, empty when the
	// level is none.
	AlertMessage string
}

// DispatchAnalyzer estimates order execution time and classifies delays.
// It is pure given an explicit "now": no timers, no internal state, safe
// to recompute on every poll or refresh tick.
//
// Estimated duration = travel + quantity·pour-rate + return. Alerting
// applies only while the order is actually executing (en_route, at_site,
// pouring): the delay past the estimated end decides the level.
type DispatchAnalyzer struct {
	travelTime        float64
	pouringTimePerM3  float64
	returnTime        float64
	warningThreshold  float64
	criticalThreshold float64
}

// NewDispatchAnalyzer creates an analyzer with the given timing model,
// all values in minutes.
func NewDispatchAnalyzer(
	travelTimeMinutes float64,
	pouringTimePerM3Minutes float64,
	returnTimeMinutes float64,
	warningThresholdMinutes float64,
	criticalThresholdMinutes float64,
) (DispatchAnalyzer, error) {
	if travelTimeMinutes < 0 || pouringTimePerM3Minutes <= 0 || returnTimeMinutes < 0 {
		return DispatchAnalyzer{}, errs.NewValueIsInvalidError("timing model")
	}
	if warningThresholdMinutes <= 0 || criticalThresholdMinutes <= warningThresholdMinutes {
		return DispatchAnalyzer{}, errs.NewValueIsInvalidErrorWithCause("thresholds",
			fmt.Errorf("need 0 < warning (%g) < critical (%g)",
				warningThresholdMinutes, criticalThresholdMinutes))
	}

	return DispatchAnalyzer{
		travelTime:        travelTimeMinutes,
		pouringTimePerM3:  pouringTimePerM3Minutes,
		returnTime:        returnTimeMinutes,
		warningThreshold:  warningThresholdMinutes,
		criticalThreshold: criticalThresholdMinutes,
	}, nil
}

// NewDefaultDispatchAnalyzer creates an analyzer with the stock timing
// model (20 + 5·m³ + 20 minutes, thresholds 15/30).
func NewDefaultDispatchAnalyzer() DispatchAnalyzer {
	analyzer, err := NewDispatchAnalyzer(
		DefaultTravelTimeMinutes,
		DefaultPouringTimePerM3Minutes,
		DefaultReturnTimeMinutes,
		DefaultWarningThresholdMinutes,
		DefaultCriticalThresholdMinutes,
	)
	if err != nil {
		// Defaults are compile-time constants; they cannot fail validation.
		panic(err)
	}
	return analyzer
}

// Analyze estimates the order's completion and classifies its delay at
// the given instant. Orders without an observed start are assumed to
// start now, so they are never late.
func (a DispatchAnalyzer) Analyze(o *order.Order, now time.Time) (DispatchAnalysis, error) {
	if err := o.Validate(); err != nil {
		return DispatchAnalysis{}, err
	}

	startTime := now
	if o.StartTime() != nil {
		startTime = *o.StartTime()
	}

	durationMinutes := a.travelTime + o.Quantity()*a.pouringTimePerM3 + a.returnTime
	endTime := startTime.Add(minutesToDuration(durationMinutes))

	analysis := DispatchAnalysis{
		EstimatedDurationMinutes: durationMinutes,
		EstimatedEndTime:         endTime,
		AlertLevel:               AlertNone,
	}

	if !isExecuting(o.Status()) {
		return analysis, nil
	}

	delayMinutes := now.Sub(endTime).Minutes()
	switch {
	case delayMinutes > a.criticalThreshold:
		analysis.AlertLevel = AlertCritical
		analysis.AlertMessage = fmt.Sprintf("איחור קריטי של %.0f דקות", math.Round(delayMinutes))
	case delayMinutes > a.warningThreshold:
		analysis.AlertLevel = AlertWarning
		analysis.AlertMessage = fmt.Sprintf("עיכוב של %.0f דקות", math.Round(delayMinutes))
	}

	return analysis, nil
}

// Progress reports order completion as a percentage for progress bars:
// 100 once the lifecycle confirms completion, 0 before execution starts,
// otherwise elapsed over estimated duration, capped at 95 so the bar
// never claims done-ness the state machine has not confirmed.
func (a DispatchAnalyzer) Progress(o *order.Order, now time.Time) (int, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}

	switch o.Status() {
	case order.Completed:
		return 100, nil
	case order.Pending, order.Approved, order.WaitingForVehicle, order.Rejected:
		return 0, nil
	}

	startTime := now
	if o.StartTime() != nil {
		startTime = *o.StartTime()
	}

	durationMinutes := a.travelTime + o.Quantity()*a.pouringTimePerM3 + a.returnTime
	elapsedMinutes := now.Sub(startTime).Minutes()
	if elapsedMinutes <= 0 {
		return 0, nil
	}

	percent := int(math.Round(elapsedMinutes / durationMinutes * 100))
	if percent > 95 {
		percent = 95
	}
	return percent, nil
}

// isExecuting mirrors the alerting scope: delay classification applies
// only while vehicles are actually working the order.
func isExecuting(s order.Status) bool {
	return s == order.EnRoute || s == order.AtSite || s == order.Pouring
}

func minutesToDuration(minutes float64) time.Duration {
	return time.Duration(minutes * float64(time.Minute))
}
