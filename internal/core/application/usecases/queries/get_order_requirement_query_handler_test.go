package queries_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createRequirementEngine(t *testing.T) services.AssignmentEngine {
	t.Helper()
	calculator, err := services.NewVehicleRequirementCalculator(services.DefaultMaxMixerCapacity)
	require.NoError(t, err)
	return services.NewAssignmentEngine(calculator)
}

func createPendingOrder(t *testing.T, quantity float64, pumpRequired bool) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		"ORD-1001",
		"Test Company",
		createTestContact(t),
		nil,
		quantity,
		order.GradeB30,
		"Test Street 1",
		time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		pumpRequired,
		"",
		time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func TestGetOrderRequirementQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	engine := createRequirementEngine(t)

	t.Run("should return the proposal for a pending order", func(t *testing.T) {
		pendingOrder := createPendingOrder(t, 20, true)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, pendingOrder.ID()).Return(pendingOrder, nil).Once()

		query, err := queries.NewGetOrderRequirementQuery(pendingOrder.ID())
		require.NoError(t, err)

		h := queries.NewGetOrderRequirementQueryHandler(repo, engine)
		response, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, 3, response.Mixers)
		assert.Equal(t, 1, response.Pump)
		assert.Equal(t, 4, response.Total)
		assert.Equal(t, "3 מיקסרים + משאבה", response.Breakdown)
	})

	t.Run("should propagate a missing order", func(t *testing.T) {
		orderID := kernel.NewUUID()

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID)).Once()

		query, err := queries.NewGetOrderRequirementQuery(orderID)
		require.NoError(t, err)

		h := queries.NewGetOrderRequirementQueryHandler(repo, engine)
		_, err = h.Handle(ctx, query)

		require.Error(t, err)
		var notFoundErr *errs.ObjectNotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("should refuse proposing for a dispatched order", func(t *testing.T) {
		startTime := time.Date(2026, 3, 10, 7, 30, 0, 0, time.UTC)
		dispatched := restoreActiveOrder(t, 10, order.EnRoute, startTime)

		repo := new(MockOrderRepository)
		repo.On("Get", ctx, dispatched.ID()).Return(dispatched, nil).Once()

		query, err := queries.NewGetOrderRequirementQuery(dispatched.ID())
		require.NoError(t, err)

		h := queries.NewGetOrderRequirementQueryHandler(repo, engine)
		_, err = h.Handle(ctx, query)

		require.Error(t, err)
		var transitionErr *errs.InvalidTransitionError
		assert.ErrorAs(t, err, &transitionErr)
	})
}
