// Package services contains the domain services of the dispatch core:
//
//   - VehicleRequirementCalculator: order -> vehicle counts (pure)
//   - AssignmentEngine: validates and commits the Order↔Vehicle binding
//   - WaitingQueue: priority queue of orders awaiting free vehicles
//   - DispatchAnalyzer: completion estimates and delay alerting (pure
//     given an explicit "now")
//
// Services operate on aggregates loaded by the application layer; the
// application layer owns transactions and persistence, so a failed
// operation leaves every aggregate untouched.
package services
