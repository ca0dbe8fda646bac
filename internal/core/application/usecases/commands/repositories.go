// Package commands implements the write-side use cases of the dispatch
// application. Each use case is a constructor-guarded command paired with
// a handler that drives domain services inside a unit of work, so every
// multi-aggregate mutation commits or rolls back as one.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// OrderUoW is the transaction scope for use cases touching only orders.
type OrderUoW interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	OrderRepository() ports.OrderRepository
}

// OrderUoWFactory creates an OrderUoW per command execution.
type OrderUoWFactory interface {
	Create() OrderUoW
}

// VehicleUoW is the transaction scope for use cases touching only vehicles.
type VehicleUoW interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	VehicleRepository() ports.VehicleRepository
}

// VehicleUoWFactory creates a VehicleUoW per command execution.
type VehicleUoWFactory interface {
	Create() VehicleUoW
}

// UoW is the transaction scope for use cases that mutate orders and
// vehicles together, such as assignment commits and driver progress.
type UoW interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	OrderRepository() ports.OrderRepository
	VehicleRepository() ports.VehicleRepository
}

// UoWFactory creates a UoW per command execution.
type UoWFactory interface {
	Create() UoW
}
