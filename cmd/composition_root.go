package cmd

import (
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires the application graph: one place that knows how
// use case handlers get their unit of work factories, repositories and
// domain services.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	engine     services.AssignmentEngine
	analyzer   services.DispatchAnalyzer
}

// NewCompositionRoot builds the composition root on top of an open GORM
// connection. The assignment engine plans against the stock mixer
// capacity and the analyzer uses the stock timing model.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	calculator, err := services.NewVehicleRequirementCalculator(services.DefaultMaxMixerCapacity)
	if err != nil {
		// DefaultMaxMixerCapacity is a compile-time constant; it cannot
		// fail validation.
		panic(err)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		engine:     services.NewAssignmentEngine(calculator),
		analyzer:   services.NewDefaultDispatchAnalyzer(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignVehiclesCommandHandler() commands.AssignVehiclesCommandHandler {
	return commands.NewAssignVehiclesCommandHandler(c.fullUoWFactory(), c.engine)
}

func (c *CompositionRoot) CreateEnqueueOrderCommandHandler() commands.EnqueueOrderCommandHandler {
	return commands.NewEnqueueOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMoveQueuedOrderCommandHandler() commands.MoveQueuedOrderCommandHandler {
	return commands.NewMoveQueuedOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveFromQueueCommandHandler() commands.RemoveFromQueueCommandHandler {
	return commands.NewRemoveFromQueueCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDispatchQueuedOrderCommandHandler() commands.DispatchQueuedOrderCommandHandler {
	return commands.NewDispatchQueuedOrderCommandHandler(c.fullUoWFactory(), c.engine)
}

func (c *CompositionRoot) CreateReportVehicleProgressCommandHandler() commands.ReportVehicleProgressCommandHandler {
	return commands.NewReportVehicleProgressCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCreateVehicleCommandHandler() commands.CreateVehicleCommandHandler {
	return commands.NewCreateVehicleCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateSetVehicleDutyCommandHandler() commands.SetVehicleDutyCommandHandler {
	return commands.NewSetVehicleDutyCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateRemoveVehicleCommandHandler() commands.RemoveVehicleCommandHandler {
	return commands.NewRemoveVehicleCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWaitingQueueQueryHandler() queries.GetWaitingQueueQueryHandler {
	return queries.NewGetWaitingQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllVehiclesQueryHandler() queries.GetAllVehiclesQueryHandler {
	return queries.NewGetAllVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDispatchBoardQueryHandler() queries.GetDispatchBoardQueryHandler {
	return queries.NewGetDispatchBoardQueryHandler(c.orderRepository(), c.analyzer)
}

func (c *CompositionRoot) CreateGetOrderRequirementQueryHandler() queries.GetOrderRequirementQueryHandler {
	return queries.NewGetOrderRequirementQueryHandler(c.orderRepository(), c.engine)
}

// orderRepository returns a repository outside any transaction, for
// read-only query handlers.
func (c *CompositionRoot) orderRepository() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vehicleUoWFactory() commands.VehicleUoWFactory {
	return FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
