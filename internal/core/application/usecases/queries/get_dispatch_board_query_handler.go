package queries

import (
	"context"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// GetDispatchBoardQueryHandler builds the live dispatch board. Unlike the
// flat listing queries it loads full order aggregates, because the
// analyzer's verdict is a function of the aggregate, not of a projection.
type GetDispatchBoardQueryHandler struct {
	orders   ports.OrderRepository
	analyzer services.DispatchAnalyzer
}

// NewGetDispatchBoardQueryHandler creates a handler for dispatch board
// queries.
func NewGetDispatchBoardQueryHandler(
	orders ports.OrderRepository,
	analyzer services.DispatchAnalyzer,
) GetDispatchBoardQueryHandler {
	return GetDispatchBoardQueryHandler{
		orders:   orders,
		analyzer: analyzer,
	}
}

// Handle loads every executing order and decorates it with its completion
// estimate, delay alert and progress percentage at the query instant.
func (h GetDispatchBoardQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchBoardQuery,
) ([]GetDispatchBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	activeOrders, err := h.orders.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	board := make([]GetDispatchBoardQueryResponse, 0, len(activeOrders))

	for _, activeOrder := range activeOrders {
		analysis, analyzeErr := h.analyzer.Analyze(activeOrder, query.Now())
		if analyzeErr != nil {
			return nil, analyzeErr
		}

		progress, progressErr := h.analyzer.Progress(activeOrder, query.Now())
		if progressErr != nil {
			return nil, progressErr
		}

		board = append(board, GetDispatchBoardQueryResponse{
			ID:                       activeOrder.ID(),
			OrderNumber:              activeOrder.OrderNumber(),
			CompanyName:              activeOrder.CompanyName(),
			Quantity:                 activeOrder.Quantity(),
			Status:                   activeOrder.Status().String(),
			StartTime:                activeOrder.StartTime(),
			EstimatedDurationMinutes: analysis.EstimatedDurationMinutes,
			EstimatedEndTime:         analysis.EstimatedEndTime,
			AlertLevel:               string(analysis.AlertLevel),
			AlertMessage:             analysis.AlertMessage,
			Progress:                 progress,
		})
	}

	return board, nil
}
