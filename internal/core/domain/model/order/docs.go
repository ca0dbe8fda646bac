// Package order implements the Order aggregate root and its supporting
// value objects for the concrete dispatch domain.
//
// The package provides:
//   - Order: aggregate root managing the delivery order lifecycle, vehicle
//     bindings and waiting-queue metadata
//   - Status: the order lifecycle state machine
//   - Grade: the concrete strength class enumeration
//   - Contact: a name+phone value object for order parties
//
// All types enforce their invariants through validated constructors and
// transition methods; direct struct initialization is detected and refused.
package order
