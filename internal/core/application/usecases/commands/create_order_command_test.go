package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	validID := kernel.NewUUID()
	deliveryTime := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)

	t.Run("should create command with valid parameters", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(validID, "Test Company",
			"Test Contact", "050-1234567", "Site Supervisor", "052-7654321",
			20, "B40", "Test Street 1", deliveryTime, true, "gate code 4711", createdAt)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(validID))
		assert.Equal(t, "Test Company", cmd.CompanyName())
		assert.Equal(t, order.GradeB40, cmd.Grade())
		assert.True(t, cmd.PumpRequired())
		assert.Equal(t, createdAt, cmd.CreatedAt())
	})

	t.Run("should allow omitting the supervisor entirely", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(validID, "Test Company",
			"Test Contact", "050-1234567", "", "",
			12, "B30", "Test Street 1", deliveryTime, false, "", createdAt)

		require.NoError(t, err)
		assert.Empty(t, cmd.SupervisorName())
	})

	t.Run("should refuse a half-specified supervisor", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(validID, "Test Company",
			"Test Contact", "050-1234567", "Site Supervisor", "",
			12, "B30", "Test Street 1", deliveryTime, false, "", createdAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrSupervisorIsIncomplete)
	})

	t.Run("should refuse an unsupported grade", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(validID, "Test Company",
			"Test Contact", "050-1234567", "", "",
			12, "B99", "Test Street 1", deliveryTime, false, "", createdAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "grade")
	})

	t.Run("should refuse a non-positive quantity", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(validID, "Test Company",
			"Test Contact", "050-1234567", "", "",
			0, "B30", "Test Street 1", deliveryTime, false, "", createdAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "quantity")
	})

	t.Run("should refuse a zero intake time", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(validID, "Test Company",
			"Test Contact", "050-1234567", "", "",
			12, "B30", "Test Street 1", deliveryTime, false, "", time.Time{})

		require.Error(t, err)
	})

	t.Run("should fail validation for a zero value command", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.Error(t, cmd.Validate())
	})
}
