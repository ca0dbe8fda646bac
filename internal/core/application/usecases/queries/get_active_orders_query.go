// Package queries implements the read-side use cases of the dispatch
// application. Handlers go straight to the database with raw SQL and
// return flat response structs; no aggregates, no transactions.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves every order currently being executed:
// vehicles on the road, at the site or pouring.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query for the active order list.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is one executing order on the dispatch
// screen.
type GetActiveOrdersQueryResponse struct {
	ID           kernel.UUID
	OrderNumber  string
	CompanyName  string
	Quantity     float64
	Grade        string
	Address      string
	DeliveryTime time.Time
	PumpRequired bool
	Status       string
	StartTime    *time.Time
}
