package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper functions.
func createValidContact(t *testing.T) order.Contact {
	t.Helper()
	contact, err := order.NewContact("Test Contact", "050-1234567")
	require.NoError(t, err)
	return contact
}

func createValidOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-1001",
		"Test Company",
		createValidContact(t),
		nil,
		12,
		order.GradeB30,
		"Test Street 1",
		time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		false,
		"",
		time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	require.NotNil(t, o)
	return o
}

func createQueuedOrder(t *testing.T, position int) *order.Order {
	t.Helper()
	o := createValidOrder(t)
	require.NoError(t, o.Enqueue(position, time.Date(2026, 3, 9, 13, 0, 0, 0, time.UTC)))
	return o
}

func createDispatchedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := createValidOrder(t)
	vehicleIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	require.NoError(t, o.Assign(vehicleIDs, time.Date(2026, 3, 10, 7, 30, 0, 0, time.UTC)))
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validContact := createValidContact(t)
	validDeliveryTime := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	validCreatedAt := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	t.Run("should create order with valid parameters", func(t *testing.T) {
		supervisor, err := order.NewContact("Site Supervisor", "052-7654321")
		require.NoError(t, err)

		o, err := order.NewOrder(validID, "ORD-1001", "Test Company", validContact, &supervisor,
			20, order.GradeB40, "Test Street 1", validDeliveryTime, true, "gate code 4711", validCreatedAt)

		require.NoError(t, err)
		require.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "ORD-1001", o.OrderNumber())
		assert.Equal(t, "Test Company", o.CompanyName())
		assert.True(t, o.SiteContact().IsEqual(validContact))
		require.NotNil(t, o.Supervisor())
		assert.True(t, o.Supervisor().IsEqual(supervisor))
		assert.InDelta(t, 20, o.Quantity(), 0.001)
		assert.Equal(t, order.GradeB40, o.Grade())
		assert.True(t, o.PumpRequired())
		assert.Equal(t, "gate code 4711", o.Notes())
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.AssignedVehicleIDs())
		assert.Equal(t, 0, o.QueuePosition())
		assert.Nil(t, o.QueuedAt())
		assert.Nil(t, o.StartTime())
	})

	t.Run("should allow omitting the supervisor", func(t *testing.T) {
		o, err := order.NewOrder(validID, "ORD-1001", "Test Company", validContact, nil,
			12, order.GradeB30, "Test Street 1", validDeliveryTime, false, "", validCreatedAt)

		require.NoError(t, err)
		assert.Nil(t, o.Supervisor())
	})

	t.Run("should return error for invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "ORD-1001", "Test Company", validContact, nil,
			12, order.GradeB30, "Test Street 1", validDeliveryTime, false, "", validCreatedAt)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should return error for non-positive quantity", func(t *testing.T) {
		testCases := []struct {
			name     string
			quantity float64
		}{
			{"zero quantity", 0},
			{"negative quantity", -5},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				o, err := order.NewOrder(validID, "ORD-1001", "Test Company", validContact, nil,
					tc.quantity, order.GradeB30, "Test Street 1", validDeliveryTime, false, "", validCreatedAt)

				require.Error(t, err)
				assert.Nil(t, o)
				assert.Contains(t, err.Error(), "quantity")
			})
		}
	})

	t.Run("should return error for unsupported grade", func(t *testing.T) {
		o, err := order.NewOrder(validID, "ORD-1001", "Test Company", validContact, nil,
			12, order.Grade("B99"), "Test Street 1", validDeliveryTime, false, "", validCreatedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "grade")
	})

	t.Run("should return aggregated errors for multiple invalid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, "", "", validContact, nil,
			0, order.GradeB30, "", validDeliveryTime, false, "", validCreatedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "orderNumber")
		assert.Contains(t, err.Error(), "companyName")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "address")
	})
}

func TestRestoreOrder(t *testing.T) {
	validContact := createValidContact(t)
	validDeliveryTime := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	validCreatedAt := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	queuedAt := time.Date(2026, 3, 9, 13, 0, 0, 0, time.UTC)

	t.Run("should restore a queued order with its queue metadata", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1001", "Test Company", validContact, nil,
			12, order.GradeB30, "Test Street 1", validDeliveryTime, false, "",
			order.WaitingForVehicle, nil, 3, &queuedAt, nil, validCreatedAt)

		require.NoError(t, err)
		assert.Equal(t, order.WaitingForVehicle, o.Status())
		assert.Equal(t, 3, o.QueuePosition())
		require.NotNil(t, o.QueuedAt())
		assert.Equal(t, queuedAt, *o.QueuedAt())
	})

	t.Run("should refuse queue metadata on a non-queued order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1001", "Test Company", validContact, nil,
			12, order.GradeB30, "Test Street 1", validDeliveryTime, false, "",
			order.Pending, nil, 3, &queuedAt, nil, validCreatedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrQueueFieldsInconsistent)
	})

	t.Run("should refuse a queued order missing its queue metadata", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1001", "Test Company", validContact, nil,
			12, order.GradeB30, "Test Street 1", validDeliveryTime, false, "",
			order.WaitingForVehicle, nil, 0, nil, nil, validCreatedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrQueueFieldsInconsistent)
	})

	t.Run("should refuse vehicles on an undispatched order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1001", "Test Company", validContact, nil,
			12, order.GradeB30, "Test Street 1", validDeliveryTime, false, "",
			order.Pending, []kernel.UUID{kernel.NewUUID()}, 0, nil, nil, validCreatedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "assignedVehicleIDs")
	})

	t.Run("should refuse an active order without vehicles", func(t *testing.T) {
		startTime := time.Date(2026, 3, 10, 7, 30, 0, 0, time.UTC)

		o, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1001", "Test Company", validContact, nil,
			12, order.GradeB30, "Test Street 1", validDeliveryTime, false, "",
			order.EnRoute, nil, 0, nil, &startTime, validCreatedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "assignedVehicleIDs")
	})

	t.Run("should restore legacy statuses written by earlier revisions", func(t *testing.T) {
		startTime := time.Date(2026, 3, 10, 7, 30, 0, 0, time.UTC)

		o, err := order.RestoreOrder(kernel.NewUUID(), "ORD-1001", "Test Company", validContact, nil,
			12, order.GradeB30, "Test Street 1", validDeliveryTime, false, "",
			order.Assigned, []kernel.UUID{kernel.NewUUID()}, 0, nil, &startTime, validCreatedAt)

		require.NoError(t, err)
		assert.True(t, o.Status().IsActive())
		require.NoError(t, o.ArriveAtSite())
		assert.Equal(t, order.AtSite, o.Status())
	})
}

func TestOrder_Assign(t *testing.T) {
	now := time.Date(2026, 3, 10, 7, 30, 0, 0, time.UTC)

	t.Run("should bind vehicles and start execution", func(t *testing.T) {
		o := createValidOrder(t)
		vehicleIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

		err := o.Assign(vehicleIDs, now)

		require.NoError(t, err)
		assert.Equal(t, order.EnRoute, o.Status())
		assert.Equal(t, vehicleIDs, o.AssignedVehicleIDs())
		require.NotNil(t, o.StartTime())
		assert.Equal(t, now, *o.StartTime())
	})

	t.Run("should clear the queue slot when assigning a queued order", func(t *testing.T) {
		o := createQueuedOrder(t, 2)

		err := o.Assign([]kernel.UUID{kernel.NewUUID()}, now)

		require.NoError(t, err)
		assert.Equal(t, order.EnRoute, o.Status())
		assert.Equal(t, 0, o.QueuePosition())
		assert.Nil(t, o.QueuedAt())
	})

	t.Run("should require at least one vehicle", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.Assign(nil, now)

		require.Error(t, err)
		var requiredErr *errs.ValueIsRequiredError
		assert.ErrorAs(t, err, &requiredErr)
	})

	t.Run("should refuse the same vehicle bound twice", func(t *testing.T) {
		o := createValidOrder(t)
		id := kernel.NewUUID()

		err := o.Assign([]kernel.UUID{id, id}, now)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should refuse assigning a dispatched order again", func(t *testing.T) {
		o := createDispatchedOrder(t)

		err := o.Assign([]kernel.UUID{kernel.NewUUID()}, now)

		require.Error(t, err)
		var transitionErr *errs.InvalidTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should walk the full delivery cycle", func(t *testing.T) {
		o := createDispatchedOrder(t)

		require.NoError(t, o.ArriveAtSite())
		assert.Equal(t, order.AtSite, o.Status())

		require.NoError(t, o.StartPouring())
		assert.Equal(t, order.Pouring, o.Status())

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("should refuse pouring before arrival", func(t *testing.T) {
		o := createDispatchedOrder(t)

		err := o.StartPouring()

		require.Error(t, err)
		var transitionErr *errs.InvalidTransitionError
		assert.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.EnRoute, o.Status())
	})

	t.Run("should refuse completing before the pour", func(t *testing.T) {
		o := createDispatchedOrder(t)
		require.NoError(t, o.ArriveAtSite())

		err := o.Complete()

		require.Error(t, err)
		assert.Equal(t, order.AtSite, o.Status())
	})

	t.Run("should reject only a pending order", func(t *testing.T) {
		o := createValidOrder(t)
		require.NoError(t, o.Reject())
		assert.Equal(t, order.Rejected, o.Status())
		assert.True(t, o.Status().IsTerminal())

		dispatched := createDispatchedOrder(t)
		require.Error(t, dispatched.Reject())
	})
}

func TestOrder_Queueing(t *testing.T) {
	queuedAt := time.Date(2026, 3, 9, 13, 0, 0, 0, time.UTC)

	t.Run("should enqueue a pending order", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.Enqueue(1, queuedAt)

		require.NoError(t, err)
		assert.Equal(t, order.WaitingForVehicle, o.Status())
		assert.Equal(t, 1, o.QueuePosition())
		require.NotNil(t, o.QueuedAt())
	})

	t.Run("should refuse a non-positive position", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.Enqueue(0, queuedAt)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should refuse enqueueing twice", func(t *testing.T) {
		o := createQueuedOrder(t, 1)

		err := o.Enqueue(2, queuedAt)

		require.Error(t, err)
		assert.Equal(t, 1, o.QueuePosition())
	})

	t.Run("should move a queued order to another slot", func(t *testing.T) {
		o := createQueuedOrder(t, 1)

		require.NoError(t, o.SetQueuePosition(5))
		assert.Equal(t, 5, o.QueuePosition())
	})

	t.Run("should refuse moving an order that is not queued", func(t *testing.T) {
		o := createValidOrder(t)

		err := o.SetQueuePosition(5)

		require.Error(t, err)
		var transitionErr *errs.InvalidTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})

	t.Run("should release a queued order back to pending", func(t *testing.T) {
		o := createQueuedOrder(t, 4)

		err := o.RemoveFromQueue()

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 0, o.QueuePosition())
		assert.Nil(t, o.QueuedAt())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for a directly instantiated order", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail for a nil order", func(t *testing.T) {
		var o *order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
