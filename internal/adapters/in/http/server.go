// Package http adapts the generated HTTP server interface to the
// application's command and query handlers. It owns the wall clock: every
// use case that needs "now" gets it stamped here, at the edge.
package http

import (
	"errors"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements servers.ServerInterface, coordinating between HTTP
// handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	rejectOrderHandler           commands.RejectOrderCommandHandler
	assignVehiclesHandler        commands.AssignVehiclesCommandHandler
	enqueueOrderHandler          commands.EnqueueOrderCommandHandler
	moveQueuedOrderHandler       commands.MoveQueuedOrderCommandHandler
	removeFromQueueHandler       commands.RemoveFromQueueCommandHandler
	createVehicleHandler         commands.CreateVehicleCommandHandler
	setVehicleDutyHandler        commands.SetVehicleDutyCommandHandler
	removeVehicleHandler         commands.RemoveVehicleCommandHandler
	reportVehicleProgressHandler commands.ReportVehicleProgressCommandHandler

	// Query handlers
	getActiveOrdersHandler     queries.GetActiveOrdersQueryHandler
	getWaitingQueueHandler     queries.GetWaitingQueueQueryHandler
	getAllVehiclesHandler      queries.GetAllVehiclesQueryHandler
	getDispatchBoardHandler    queries.GetDispatchBoardQueryHandler
	getOrderRequirementHandler queries.GetOrderRequirementQueryHandler
}

// NewServer creates an HTTP server wired to the given command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	assignVehiclesHandler commands.AssignVehiclesCommandHandler,
	enqueueOrderHandler commands.EnqueueOrderCommandHandler,
	moveQueuedOrderHandler commands.MoveQueuedOrderCommandHandler,
	removeFromQueueHandler commands.RemoveFromQueueCommandHandler,
	createVehicleHandler commands.CreateVehicleCommandHandler,
	setVehicleDutyHandler commands.SetVehicleDutyCommandHandler,
	removeVehicleHandler commands.RemoveVehicleCommandHandler,
	reportVehicleProgressHandler commands.ReportVehicleProgressCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getWaitingQueueHandler queries.GetWaitingQueueQueryHandler,
	getAllVehiclesHandler queries.GetAllVehiclesQueryHandler,
	getDispatchBoardHandler queries.GetDispatchBoardQueryHandler,
	getOrderRequirementHandler queries.GetOrderRequirementQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		rejectOrderHandler:           rejectOrderHandler,
		assignVehiclesHandler:        assignVehiclesHandler,
		enqueueOrderHandler:          enqueueOrderHandler,
		moveQueuedOrderHandler:       moveQueuedOrderHandler,
		removeFromQueueHandler:       removeFromQueueHandler,
		createVehicleHandler:         createVehicleHandler,
		setVehicleDutyHandler:        setVehicleDutyHandler,
		removeVehicleHandler:         removeVehicleHandler,
		reportVehicleProgressHandler: reportVehicleProgressHandler,
		getActiveOrdersHandler:       getActiveOrdersHandler,
		getWaitingQueueHandler:       getWaitingQueueHandler,
		getAllVehiclesHandler:        getAllVehiclesHandler,
		getDispatchBoardHandler:      getDispatchBoardHandler,
		getOrderRequirementHandler:   getOrderRequirementHandler,
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	supervisorName, supervisorPhone := "", ""
	if newOrder.Supervisor != nil {
		supervisorName = newOrder.Supervisor.Name
		supervisorPhone = newOrder.Supervisor.Phone
	}

	notes := ""
	if newOrder.Notes != nil {
		notes = *newOrder.Notes
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(),
		newOrder.CompanyName,
		newOrder.SiteContact.Name,
		newOrder.SiteContact.Phone,
		supervisorName,
		supervisorPhone,
		newOrder.Quantity,
		string(newOrder.Grade),
		newOrder.Address,
		newOrder.DeliveryTime,
		newOrder.PumpRequired,
		notes,
		time.Now(),
	)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	activeOrders, err := s.getActiveOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return writeError(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]servers.ActiveOrder, len(activeOrders))
	for i, activeOrder := range activeOrders {
		response[i] = servers.ActiveOrder{
			Id:           activeOrder.ID.Bytes(),
			OrderNumber:  activeOrder.OrderNumber,
			CompanyName:  activeOrder.CompanyName,
			Quantity:     activeOrder.Quantity,
			Grade:        activeOrder.Grade,
			Address:      activeOrder.Address,
			DeliveryTime: activeOrder.DeliveryTime,
			PumpRequired: activeOrder.PumpRequired,
			Status:       activeOrder.Status,
			StartTime:    activeOrder.StartTime,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject.
func (s *Server) RejectOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewRejectOrderCommand(id)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderRequirement handles GET /api/v1/orders/{orderId}/requirement.
func (s *Server) GetOrderRequirement(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderRequirementQuery(id)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	requirement, err := s.getOrderRequirementHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.VehicleRequirement{
		Mixers:    requirement.Mixers,
		Pump:      requirement.Pump,
		Total:     requirement.Total,
		Breakdown: requirement.Breakdown,
	})
}

// AssignVehicles handles POST /api/v1/orders/{orderId}/assign.
func (s *Server) AssignVehicles(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var selection servers.VehicleSelection
	if err = ctx.Bind(&selection); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	vehicleIDs := make([]kernel.UUID, 0, len(selection.VehicleIds))
	for _, rawID := range selection.VehicleIds {
		vehicleID, idErr := kernel.UUIDFromBytes(rawID[:])
		if idErr != nil {
			return writeError(ctx, http.StatusBadRequest, "Invalid vehicle id")
		}
		vehicleIDs = append(vehicleIDs, vehicleID)
	}

	cmd, err := commands.NewAssignVehiclesCommand(id, vehicleIDs, time.Now())
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.assignVehiclesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EnqueueOrder handles POST /api/v1/orders/{orderId}/queue.
func (s *Server) EnqueueOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewEnqueueOrderCommand(id, time.Now())
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.enqueueOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MoveQueuedOrder handles POST /api/v1/orders/{orderId}/queue/move.
func (s *Server) MoveQueuedOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var move servers.QueueMove
	if err = ctx.Bind(&move); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewMoveQueuedOrderCommand(id, string(move.Direction))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.moveQueuedOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveFromQueue handles DELETE /api/v1/orders/{orderId}/queue.
func (s *Server) RemoveFromQueue(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewRemoveFromQueueCommand(id)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.removeFromQueueHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetWaitingQueue handles GET /api/v1/queue.
func (s *Server) GetWaitingQueue(ctx echo.Context) error {
	queue, err := s.getWaitingQueueHandler.Handle(
		ctx.Request().Context(), queries.NewGetWaitingQueueQuery())
	if err != nil {
		return writeError(ctx, http.StatusInternalServerError, "Failed to retrieve queue")
	}

	response := make([]servers.QueuedOrder, len(queue))
	for i, queuedOrder := range queue {
		response[i] = servers.QueuedOrder{
			Id:            queuedOrder.ID.Bytes(),
			OrderNumber:   queuedOrder.OrderNumber,
			CompanyName:   queuedOrder.CompanyName,
			Quantity:      queuedOrder.Quantity,
			PumpRequired:  queuedOrder.PumpRequired,
			QueuePosition: queuedOrder.QueuePosition,
			QueuedAt:      queuedOrder.QueuedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDispatchBoard handles GET /api/v1/board.
func (s *Server) GetDispatchBoard(ctx echo.Context) error {
	query, err := queries.NewGetDispatchBoardQuery(time.Now())
	if err != nil {
		return writeError(ctx, http.StatusInternalServerError, err.Error())
	}

	board, err := s.getDispatchBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, http.StatusInternalServerError, "Failed to build dispatch board")
	}

	response := make([]servers.BoardEntry, len(board))
	for i, entry := range board {
		var alertMessage *string
		if entry.AlertMessage != "" {
			message := entry.AlertMessage
			alertMessage = &message
		}

		response[i] = servers.BoardEntry{
			Id:                       entry.ID.Bytes(),
			OrderNumber:              entry.OrderNumber,
			CompanyName:              entry.CompanyName,
			Quantity:                 entry.Quantity,
			Status:                   entry.Status,
			StartTime:                entry.StartTime,
			EstimatedDurationMinutes: entry.EstimatedDurationMinutes,
			EstimatedEndTime:         entry.EstimatedEndTime,
			AlertLevel:               servers.BoardEntryAlertLevel(entry.AlertLevel),
			AlertMessage:             alertMessage,
			Progress:                 entry.Progress,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetVehicles handles GET /api/v1/vehicles.
func (s *Server) GetVehicles(ctx echo.Context) error {
	fleet, err := s.getAllVehiclesHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllVehiclesQuery())
	if err != nil {
		return writeError(ctx, http.StatusInternalServerError, "Failed to retrieve vehicles")
	}

	response := make([]servers.Vehicle, len(fleet))
	for i, fleetVehicle := range fleet {
		var currentOrderID *openapi_types.UUID
		if fleetVehicle.CurrentOrderID != nil {
			raw := fleetVehicle.CurrentOrderID.Bytes()
			currentOrderID = &raw
		}

		response[i] = servers.Vehicle{
			Id:             fleetVehicle.ID.Bytes(),
			VehicleNumber:  fleetVehicle.VehicleNumber,
			DriverName:     fleetVehicle.DriverName,
			VehicleType:    fleetVehicle.VehicleType,
			Capacity:       fleetVehicle.Capacity,
			Status:         fleetVehicle.Status,
			CurrentOrderId: currentOrderID,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	var newVehicle servers.NewVehicle
	if err := ctx.Bind(&newVehicle); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	capacity := 0.0
	if newVehicle.Capacity != nil {
		capacity = *newVehicle.Capacity
	}

	cmd, err := commands.NewCreateVehicleCommand(
		kernel.NewUUID(),
		newVehicle.VehicleNumber,
		newVehicle.DriverName,
		string(newVehicle.VehicleType),
		capacity,
	)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid vehicle data: "+err.Error())
	}

	if err = s.createVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveVehicle handles DELETE /api/v1/vehicles/{vehicleId}.
func (s *Server) RemoveVehicle(ctx echo.Context, vehicleId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(vehicleId[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid vehicle id")
	}

	cmd, err := commands.NewRemoveVehicleCommand(id)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.removeVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetVehicleDuty handles PUT /api/v1/vehicles/{vehicleId}/duty.
func (s *Server) SetVehicleDuty(ctx echo.Context, vehicleId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(vehicleId[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid vehicle id")
	}

	var dutyChange servers.DutyChange
	if err = ctx.Bind(&dutyChange); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSetVehicleDutyCommand(id, string(dutyChange.Duty))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.setVehicleDutyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReportVehicleProgress handles POST /api/v1/vehicles/{vehicleId}/progress.
func (s *Server) ReportVehicleProgress(ctx echo.Context, vehicleId openapi_types.UUID) error {
	id, err := kernel.UUIDFromBytes(vehicleId[:])
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid vehicle id")
	}

	var report servers.ProgressReport
	if err = ctx.Bind(&report); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewReportVehicleProgressCommand(id, string(report.Event))
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.reportVehicleProgressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// writeDomainError maps domain errors onto HTTP status codes: missing
// aggregates to 404, booking races and version conflicts to 409, illegal
// lifecycle moves to 422, validation failures to 400.
func writeDomainError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	var conflict *errs.ConflictError
	var version *errs.VersionIsInvalidError
	var transition *errs.InvalidTransitionError
	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError

	switch {
	case errors.As(err, &notFound):
		return writeError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrOrderNotInQueue):
		return writeError(ctx, http.StatusNotFound, err.Error())
	case errors.As(err, &conflict), errors.As(err, &version):
		return writeError(ctx, http.StatusConflict, err.Error())
	case errors.As(err, &transition),
		errors.Is(err, services.ErrOrderAtQueueHead),
		errors.Is(err, services.ErrOrderAtQueueTail):
		return writeError(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &invalid), errors.As(err, &required):
		return writeError(ctx, http.StatusBadRequest, err.Error())
	default:
		return writeError(ctx, http.StatusInternalServerError, "Internal error")
	}
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
