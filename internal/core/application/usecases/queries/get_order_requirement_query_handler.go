package queries

import (
	"context"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// GetOrderRequirementQueryHandler computes assignment proposals. Like the
// dispatch board it loads the full aggregate, because the requirement is a
// function of the order, not of a projection.
type GetOrderRequirementQueryHandler struct {
	orders ports.OrderRepository
	engine services.AssignmentEngine
}

// NewGetOrderRequirementQueryHandler creates a handler for requirement
// queries.
func NewGetOrderRequirementQueryHandler(
	orders ports.OrderRepository,
	engine services.AssignmentEngine,
) GetOrderRequirementQueryHandler {
	return GetOrderRequirementQueryHandler{
		orders: orders,
		engine: engine,
	}
}

// Handle loads the order and returns the engine's proposal for it.
func (h GetOrderRequirementQueryHandler) Handle(
	ctx context.Context,
	query GetOrderRequirementQuery,
) (GetOrderRequirementQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderRequirementQueryResponse{}, err
	}

	plannedOrder, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderRequirementQueryResponse{}, err
	}

	requirement, err := h.engine.ProposeAssignment(plannedOrder)
	if err != nil {
		return GetOrderRequirementQueryResponse{}, err
	}

	return GetOrderRequirementQueryResponse{
		Mixers:    requirement.Mixers,
		Pump:      requirement.Pump,
		Total:     requirement.Total,
		Breakdown: requirement.Breakdown,
	}, nil
}
