// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, order *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, order *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllQueued retrieves every order currently waiting for a vehicle,
	// sorted by queue position ascending (dispatch priority order).
	GetAllQueued(ctx context.Context) ([]*order.Order, error)

	// GetAllActive retrieves every order currently being executed
	// (en_route, at_site, pouring, plus legacy approved/assigned).
	// Used by the delay alert sweep.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// NextOrderNumber produces the next human-readable sequential order
	// number, e.g. "ORD-1007".
	NextOrderNumber(ctx context.Context) (string, error)
}
