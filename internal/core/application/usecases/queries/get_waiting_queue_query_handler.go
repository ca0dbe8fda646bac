package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWaitingQueueQueryHandler lists queued orders by priority.
type GetWaitingQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetWaitingQueueQueryHandler creates a handler for waiting queue
// queries.
func NewGetWaitingQueueQueryHandler(db *gorm.DB) GetWaitingQueueQueryHandler {
	return GetWaitingQueueQueryHandler{db: db}
}

// Handle returns the queued orders sorted by queue position ascending.
func (h GetWaitingQueueQueryHandler) Handle(
	ctx context.Context,
	query GetWaitingQueueQuery,
) ([]GetWaitingQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	queue := make([]GetWaitingQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			company_name,
			quantity,
			pump_required,
			queue_position,
			queued_at
		FROM orders
		WHERE status = ?
		ORDER BY queue_position
	`, order.WaitingForVehicle.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var queueResp GetWaitingQueueQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&queueResp.OrderNumber,
			&queueResp.CompanyName,
			&queueResp.Quantity,
			&queueResp.PumpRequired,
			&queueResp.QueuePosition,
			&queueResp.QueuedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		queueResp.ID = orderID

		queue = append(queue, queueResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queue, nil
}
