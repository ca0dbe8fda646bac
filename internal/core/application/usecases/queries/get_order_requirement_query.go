package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrderRequirementQueryIsNotConstructed = errors.New(
	"GetOrderRequirementQuery must be created via NewGetOrderRequirementQuery constructor",
)

// GetOrderRequirementQuery computes the vehicle requirement proposal for
// an order: how many mixers, whether a pump, and the dispatcher-facing
// breakdown. The proposal carries no authority; it is re-validated when
// the assignment commits.
type GetOrderRequirementQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderRequirementQuery creates a requirement query for the given
// order.
func NewGetOrderRequirementQuery(orderID kernel.UUID) (GetOrderRequirementQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderRequirementQuery{}, err
	}

	return GetOrderRequirementQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderRequirementQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderRequirementQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to plan for.
func (q GetOrderRequirementQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderRequirementQueryResponse is the vehicle requirement proposal.
type GetOrderRequirementQueryResponse struct {
	Mixers    int
	Pump      int
	Total     int
	Breakdown string
}
