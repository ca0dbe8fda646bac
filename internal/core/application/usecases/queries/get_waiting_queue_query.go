package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetWaitingQueueQueryIsNotConstructed = errors.New(
	"GetWaitingQueueQuery must be created via NewGetWaitingQueueQuery constructor",
)

// GetWaitingQueueQuery retrieves the waiting queue in dispatch priority
// order.
type GetWaitingQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWaitingQueueQuery creates a query for the waiting queue.
func NewGetWaitingQueueQuery() GetWaitingQueueQuery {
	return GetWaitingQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWaitingQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetWaitingQueueQueryIsNotConstructed)
}

// GetWaitingQueueQueryResponse is one queued order. Positions are sorted
// but not necessarily contiguous; removals leave gaps.
type GetWaitingQueueQueryResponse struct {
	ID            kernel.UUID
	OrderNumber   string
	CompanyName   string
	Quantity      float64
	PumpRequired  bool
	QueuePosition int
	QueuedAt      time.Time
}
