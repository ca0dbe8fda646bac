package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/domain/services"
)

var (
	// ErrNoQueuedOrders signals an empty waiting queue. Expected on most
	// dispatcher ticks; not a failure.
	ErrNoQueuedOrders = errors.New("no queued orders")

	// ErrNotEnoughVehicles signals that the available fleet cannot cover the
	// head order's requirement. The order stays queued for the next tick.
	ErrNotEnoughVehicles = errors.New("not enough available vehicles")
)

// DispatchQueuedOrderCommandHandler dispatches the head of the waiting
// queue. It picks vehicles first-fit: enough mixers to cover the volume,
// plus a pump when the order calls for one.
//
// Example:
//
//	cmd, _ := NewDispatchQueuedOrderCommand(time.Now())
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoQueuedOrders):
//	    // queue empty, nothing to do
//	case errors.Is(err, ErrNotEnoughVehicles):
//	    // fleet busy, retry next tick
//	case err != nil:
//	    log.Printf("dispatch failed: %v", err)
//	}
type DispatchQueuedOrderCommandHandler struct {
	uowFactory UoWFactory
	engine     services.AssignmentEngine
}

// NewDispatchQueuedOrderCommandHandler creates a handler for automatic
// queue dispatch.
func NewDispatchQueuedOrderCommandHandler(
	uowFactory UoWFactory,
	engine services.AssignmentEngine,
) DispatchQueuedOrderCommandHandler {
	return DispatchQueuedOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle takes the highest priority queued order, selects vehicles from the
// available fleet and commits the assignment. Order and vehicles persist in
// one transaction.
func (h DispatchQueuedOrderCommandHandler) Handle(ctx context.Context, command DispatchQueuedOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	vehiclesRepo := uow.VehicleRepository()

	queued, err := ordersRepo.GetAllQueued(ctx)
	if err != nil {
		return err
	}
	if len(queued) == 0 {
		return ErrNoQueuedOrders
	}

	head := queued[0]

	requirement, err := h.engine.ProposeAssignment(head)
	if err != nil {
		return err
	}

	available, err := vehiclesRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}

	selected, ok := pickFirstFit(available, requirement)
	if !ok {
		return ErrNotEnoughVehicles
	}

	if err = h.engine.CommitAssignment(head, selected, command.Now()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, head); err != nil {
		return err
	}

	for _, assignedVehicle := range selected {
		if err = vehiclesRepo.Update(ctx, assignedVehicle); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// pickFirstFit selects the required number of mixers and pumps from the
// available fleet in repository order. Returns false when the fleet cannot
// cover the requirement.
func pickFirstFit(
	available []*vehicle.Vehicle,
	requirement services.VehicleRequirement,
) ([]*vehicle.Vehicle, bool) {
	selected := make([]*vehicle.Vehicle, 0, requirement.Total)
	mixers, pumps := 0, 0

	for _, candidate := range available {
		switch candidate.Type() {
		case vehicle.TypeMixer:
			if mixers < requirement.Mixers {
				selected = append(selected, candidate)
				mixers++
			}
		case vehicle.TypePump:
			if pumps < requirement.Pump {
				selected = append(selected, candidate)
				pumps++
			}
		}
	}

	if mixers < requirement.Mixers || pumps < requirement.Pump {
		return nil, false
	}
	return selected, true
}
