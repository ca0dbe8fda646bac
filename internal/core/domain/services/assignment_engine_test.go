package services_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMixer(t *testing.T, number string) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), number, "Test Driver", vehicle.TypeMixer, 10)
	require.NoError(t, err)
	require.NotNil(t, v)
	return v
}

func createPump(t *testing.T, number string) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), number, "Test Driver", vehicle.TypePump, 0)
	require.NoError(t, err)
	require.NotNil(t, v)
	return v
}

func createEngine(t *testing.T) services.AssignmentEngine {
	t.Helper()
	return services.NewAssignmentEngine(createCalculator(t))
}

func TestAssignmentEngine_ProposeAssignment(t *testing.T) {
	engine := createEngine(t)

	t.Run("should return the requirement for a pending order", func(t *testing.T) {
		o := createPendingOrder(t, 20, true)

		requirement, err := engine.ProposeAssignment(o)

		require.NoError(t, err)
		assert.Equal(t, 3, requirement.Mixers)
		assert.Equal(t, 1, requirement.Pump)
		assert.Equal(t, 4, requirement.Total)
	})

	t.Run("should return the requirement for a queued order", func(t *testing.T) {
		o := restoreQueuedOrder(t, 1)

		_, err := engine.ProposeAssignment(o)

		require.NoError(t, err)
	})

	t.Run("should refuse an order that is already dispatched", func(t *testing.T) {
		start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
		o := restoreActiveOrder(t, 20, order.EnRoute, start)

		_, err := engine.ProposeAssignment(o)

		require.Error(t, err)
		var transitionErr *errs.InvalidTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})
}

func TestAssignmentEngine_ValidateSelection(t *testing.T) {
	engine := createEngine(t)

	t.Run("should accept a selection matching the requirement", func(t *testing.T) {
		o := createPendingOrder(t, 20, true)
		requirement, err := engine.ProposeAssignment(o)
		require.NoError(t, err)

		selected := []*vehicle.Vehicle{
			createMixer(t, "מיקסר-01"),
			createMixer(t, "מיקסר-02"),
			createMixer(t, "מיקסר-03"),
			createPump(t, "משאבה-01"),
		}

		assert.NoError(t, engine.ValidateSelection(o, requirement, selected))
	})

	t.Run("should refuse a wrong mixer count", func(t *testing.T) {
		o := createPendingOrder(t, 20, false)
		requirement, err := engine.ProposeAssignment(o)
		require.NoError(t, err)

		selected := []*vehicle.Vehicle{createMixer(t, "מיקסר-01")}

		err = engine.ValidateSelection(o, requirement, selected)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "mixers")
	})

	t.Run("should refuse a missing pump", func(t *testing.T) {
		o := createPendingOrder(t, 6, true)
		requirement, err := engine.ProposeAssignment(o)
		require.NoError(t, err)

		selected := []*vehicle.Vehicle{createMixer(t, "מיקסר-01")}

		err = engine.ValidateSelection(o, requirement, selected)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "pump")
	})

	t.Run("should refuse the same vehicle selected twice", func(t *testing.T) {
		o := createPendingOrder(t, 12, false)
		requirement, err := engine.ProposeAssignment(o)
		require.NoError(t, err)

		mixer := createMixer(t, "מיקסר-01")
		err = engine.ValidateSelection(o, requirement, []*vehicle.Vehicle{mixer, mixer})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "twice")
	})

	t.Run("should report an unavailable vehicle as a conflict", func(t *testing.T) {
		o := createPendingOrder(t, 6, false)
		requirement, err := engine.ProposeAssignment(o)
		require.NoError(t, err)

		busy := createMixer(t, "מיקסר-01")
		require.NoError(t, busy.Assign(kernel.NewUUID()))

		err = engine.ValidateSelection(o, requirement, []*vehicle.Vehicle{busy})

		require.Error(t, err)
		var conflictErr *errs.ConflictError
		assert.ErrorAs(t, err, &conflictErr)
	})

	t.Run("should exempt a vehicle already serving this order", func(t *testing.T) {
		o := createPendingOrder(t, 6, false)
		requirement, err := engine.ProposeAssignment(o)
		require.NoError(t, err)

		mixer := createMixer(t, "מיקסר-01")
		require.NoError(t, mixer.Assign(o.ID()))

		assert.NoError(t, engine.ValidateSelection(o, requirement, []*vehicle.Vehicle{mixer}))
	})
}

func TestAssignmentEngine_CommitAssignment(t *testing.T) {
	engine := createEngine(t)
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("should transition the order and every vehicle together", func(t *testing.T) {
		o := createPendingOrder(t, 20, true)
		selected := []*vehicle.Vehicle{
			createMixer(t, "מיקסר-01"),
			createMixer(t, "מיקסר-02"),
			createMixer(t, "מיקסר-03"),
			createPump(t, "משאבה-01"),
		}

		err := engine.CommitAssignment(o, selected, now)

		require.NoError(t, err)
		assert.Equal(t, order.EnRoute, o.Status())
		require.NotNil(t, o.StartTime())
		assert.Equal(t, now, *o.StartTime())
		assert.Len(t, o.AssignedVehicleIDs(), 4)

		for _, v := range selected {
			assert.Equal(t, vehicle.EnRoute, v.Status())
			require.NotNil(t, v.CurrentOrderID())
			assert.True(t, v.CurrentOrderID().IsEqual(o.ID()))
		}
	})

	t.Run("should clear the queue slot when dispatching from the queue", func(t *testing.T) {
		o := restoreQueuedOrder(t, 3)
		selected := []*vehicle.Vehicle{
			createMixer(t, "מיקסר-01"),
			createMixer(t, "מיקסר-02"),
		}

		err := engine.CommitAssignment(o, selected, now)

		require.NoError(t, err)
		assert.Equal(t, order.EnRoute, o.Status())
		assert.Equal(t, 0, o.QueuePosition())
		assert.Nil(t, o.QueuedAt())
	})

	t.Run("should mutate nothing when the selection does not match", func(t *testing.T) {
		o := createPendingOrder(t, 20, false)
		mixer := createMixer(t, "מיקסר-01")

		err := engine.CommitAssignment(o, []*vehicle.Vehicle{mixer}, now)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.AssignedVehicleIDs())
		assert.Equal(t, vehicle.Available, mixer.Status())
	})

	t.Run("should mutate nothing when a vehicle was taken concurrently", func(t *testing.T) {
		o := createPendingOrder(t, 6, false)
		busy := createMixer(t, "מיקסר-01")
		require.NoError(t, busy.Assign(kernel.NewUUID()))

		err := engine.CommitAssignment(o, []*vehicle.Vehicle{busy}, now)

		require.Error(t, err)
		var conflictErr *errs.ConflictError
		assert.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, order.Pending, o.Status())
	})
}
