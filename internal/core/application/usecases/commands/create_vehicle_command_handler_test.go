package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/vehicle"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateVehicleCommand(t *testing.T) {
	t.Run("should parse the vehicle type from its wire form", func(t *testing.T) {
		cmd, err := commands.NewCreateVehicleCommand(kernel.NewUUID(), "מיקסר-01", "Test Driver", "mixer", 12)

		require.NoError(t, err)
		assert.Equal(t, vehicle.TypeMixer, cmd.VehicleType())
		assert.InDelta(t, 12, cmd.Capacity(), 0.001)
	})

	t.Run("should refuse an unknown vehicle type", func(t *testing.T) {
		_, err := commands.NewCreateVehicleCommand(kernel.NewUUID(), "מיקסר-01", "Test Driver", "crane", 12)

		require.Error(t, err)
	})

	t.Run("should refuse a pump carrying volume", func(t *testing.T) {
		_, err := commands.NewCreateVehicleCommand(kernel.NewUUID(), "משאבה-01", "Test Driver", "pump", 8)

		require.Error(t, err)
	})
}

func TestCreateVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateVehicleCommand(kernel.NewUUID(), "מיקסר-01", "Test Driver", "mixer", 12)
	require.NoError(t, err)

	vehiclesRepo := new(MockVehicleRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleRepository").Return(vehiclesRepo).Once(),
		vehiclesRepo.On("Add", ctx, mock.AnythingOfType("*vehicle.Vehicle")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateVehicleCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	vehiclesRepo.AssertExpectations(t)

	added := vehiclesRepo.Calls[0].Arguments.Get(1).(*vehicle.Vehicle)
	assert.Equal(t, "מיקסר-01", added.VehicleNumber())
	assert.Equal(t, vehicle.Available, added.Status())
}
