package commands_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Repository and unit of work mocks shared by the handler tests.
type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllQueued(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) NextOrderNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAllAvailable(ctx context.Context) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// Domain fixtures.
func createTestContact(t *testing.T) order.Contact {
	t.Helper()
	contact, err := order.NewContact("Test Contact", "050-1234567")
	require.NoError(t, err)
	return contact
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

func restoreQueuedOrder(t *testing.T, position int, quantity float64) *order.Order {
	t.Helper()
	queuedAt := time.Date(2026, 3, 9, 13, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		"ORD-1002",
		"Test Company",
		createTestContact(t),
		nil,
		quantity,
		order.GradeB30,
		"Test Street 1",
		time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		false,
		"",
		order.WaitingForVehicle,
		nil,
		position,
		&queuedAt,
		nil,
		time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func restoreOrderInStatus(t *testing.T, status order.Status, vehicleIDs []kernel.UUID) *order.Order {
	t.Helper()
	startTime := time.Date(2026, 3, 10, 7, 30, 0, 0, time.UTC)
	o, err := order.RestoreOrder(
		kernel.NewUUID(),
		"ORD-1003",
		"Test Company",
		createTestContact(t),
		nil,
		10,
		order.GradeB30,
		"Test Street 1",
		time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		false,
		"",
		status,
		vehicleIDs,
		0,
		nil,
		&startTime,
		time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func createMixer(t *testing.T, number string) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), number, "Test Driver", vehicle.TypeMixer, 10)
	require.NoError(t, err)
	return v
}

func restoreVehicleInStatus(t *testing.T, status vehicle.Status, orderID *kernel.UUID) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.RestoreVehicle(kernel.NewUUID(), "מיקסר-01", "Test Driver",
		vehicle.TypeMixer, 10, status, orderID, 1)
	require.NoError(t, err)
	return v
}

func createTestEngine(t *testing.T) services.AssignmentEngine {
	t.Helper()
	calculator, err := services.NewVehicleRequirementCalculator(services.DefaultMaxMixerCapacity)
	require.NoError(t, err)
	return services.NewAssignmentEngine(calculator)
}
