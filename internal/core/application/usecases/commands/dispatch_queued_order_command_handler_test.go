package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createDispatchCommand(t *testing.T) commands.DispatchQueuedOrderCommand {
	t.Helper()
	cmd, err := commands.NewDispatchQueuedOrderCommand(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return cmd
}

func TestDispatchQueuedOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	// 10 m³ at the head needs two mixers; a third stays available.
	head := restoreQueuedOrder(t, 1, 10)
	first := createMixer(t, "מיקסר-01")
	second := createMixer(t, "מיקסר-02")
	spare := createMixer(t, "מיקסר-03")

	ordersRepo := new(MockOrderRepository)
	vehiclesRepo := new(MockVehicleRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(ordersRepo).Once()
	uow.On("VehicleRepository").Return(vehiclesRepo).Once()
	ordersRepo.On("GetAllQueued", ctx).Return([]*order.Order{head}, nil).Once()
	vehiclesRepo.On("GetAllAvailable", ctx).Return([]*vehicle.Vehicle{first, second, spare}, nil).Once()
	ordersRepo.On("Update", ctx, head).Return(nil).Once()
	vehiclesRepo.On("Update", ctx, first).Return(nil).Once()
	vehiclesRepo.On("Update", ctx, second).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchQueuedOrderCommandHandler(factory, createTestEngine(t))
	err := h.Handle(ctx, createDispatchCommand(t))

	require.NoError(t, err)
	ordersRepo.AssertExpectations(t)
	vehiclesRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	assert.Equal(t, order.EnRoute, head.Status())
	assert.Equal(t, 0, head.QueuePosition())
	assert.Equal(t, vehicle.EnRoute, first.Status())
	assert.Equal(t, vehicle.EnRoute, second.Status())
	assert.Equal(t, vehicle.Available, spare.Status())
}

func TestDispatchQueuedOrderCommandHandler_Handle_EmptyQueue(t *testing.T) {
	ctx := t.Context()

	ordersRepo := new(MockOrderRepository)
	vehiclesRepo := new(MockVehicleRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(ordersRepo).Once()
	uow.On("VehicleRepository").Return(vehiclesRepo).Once()
	ordersRepo.On("GetAllQueued", ctx).Return([]*order.Order{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchQueuedOrderCommandHandler(factory, createTestEngine(t))
	err := h.Handle(ctx, createDispatchCommand(t))

	require.ErrorIs(t, err, commands.ErrNoQueuedOrders)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestDispatchQueuedOrderCommandHandler_Handle_NotEnoughVehicles(t *testing.T) {
	ctx := t.Context()

	head := restoreQueuedOrder(t, 1, 20) // needs three mixers
	onlyMixer := createMixer(t, "מיקסר-01")

	ordersRepo := new(MockOrderRepository)
	vehiclesRepo := new(MockVehicleRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(ordersRepo).Once()
	uow.On("VehicleRepository").Return(vehiclesRepo).Once()
	ordersRepo.On("GetAllQueued", ctx).Return([]*order.Order{head}, nil).Once()
	vehiclesRepo.On("GetAllAvailable", ctx).Return([]*vehicle.Vehicle{onlyMixer}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDispatchQueuedOrderCommandHandler(factory, createTestEngine(t))
	err := h.Handle(ctx, createDispatchCommand(t))

	require.ErrorIs(t, err, commands.ErrNotEnoughVehicles)
	assert.Equal(t, order.WaitingForVehicle, head.Status())
	assert.Equal(t, vehicle.Available, onlyMixer.Status())
	ordersRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
