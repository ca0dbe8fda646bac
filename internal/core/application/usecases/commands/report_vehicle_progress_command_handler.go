package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
)

// ReportVehicleProgressCommandHandler advances a vehicle through its
// delivery cycle and mirrors the milestone onto the order it serves.
//
// Mirroring is tolerant: when several vehicles serve one order, the first
// report advances the order and later reports find it already there, which
// is fine. The order completes when pouring ends; the trip back to base is
// a vehicle-only affair.
type ReportVehicleProgressCommandHandler struct {
	uowFactory UoWFactory
}

// NewReportVehicleProgressCommandHandler creates a handler for driver
// progress reports.
func NewReportVehicleProgressCommandHandler(uowFactory UoWFactory) ReportVehicleProgressCommandHandler {
	return ReportVehicleProgressCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle advances the vehicle, mirrors the milestone onto its order when
// the order has not been advanced yet, and persists both in one
// transaction.
func (h ReportVehicleProgressCommandHandler) Handle(ctx context.Context, command ReportVehicleProgressCommand) error {
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

	reportingVehicle, err := vehiclesRepo.Get(ctx, command.VehicleID())
	if err != nil {
		return err
	}

	// CompleteReturn clears the binding, so capture it first.
	servedOrderID := reportingVehicle.CurrentOrderID()

	if err = advanceVehicle(reportingVehicle, command.Event()); err != nil {
		return err
	}

	if err = vehiclesRepo.Update(ctx, reportingVehicle); err != nil {
		return err
	}

	if servedOrderID != nil && command.Event() != EventReturned {
		servedOrder, getErr := ordersRepo.Get(ctx, *servedOrderID)
		if getErr != nil {
			return getErr
		}

		if mirrorOntoOrder(servedOrder, command.Event()) {
			if err = ordersRepo.Update(ctx, servedOrder); err != nil {
				return err
			}
		}
	}

	return uow.Commit(ctx)
}

func advanceVehicle(v *vehicle.Vehicle, event ProgressEvent) error {
	switch event {
	case EventArrivedAtSite:
		return v.ArriveAtSite()
	case EventPouringStarted:
		return v.StartPouring()
	case EventReturning:
		return v.StartReturning()
	case EventReturned:
		return v.CompleteReturn()
	default:
		return event.Validate()
	}
}

// mirrorOntoOrder advances the order to match the vehicle milestone and
// reports whether the order changed. An order already at or past the
// milestone (advanced by a sibling vehicle) is left alone.
func mirrorOntoOrder(o *order.Order, event ProgressEvent) bool {
	switch event {
	case EventArrivedAtSite:
		if o.Status().IsActive() && o.Status() != order.AtSite && o.Status() != order.Pouring {
			return o.ArriveAtSite() == nil
		}
	case EventPouringStarted:
		if o.Status() == order.AtSite {
			return o.StartPouring() == nil
		}
	case EventReturning:
		if o.Status() == order.Pouring {
			return o.Complete() == nil
		}
	case EventReturned:
	}
	return false
}
