package http_test

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadAPIContract(t *testing.T) *openapi3.T {
	t.Helper()
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("../../../../api/openapi.yml")
	require.NoError(t, err)
	return doc
}

func TestAPIContract(t *testing.T) {
	ctx := t.Context()
	doc := loadAPIContract(t)

	t.Run("should be a valid OpenAPI document", func(t *testing.T) {
		require.NoError(t, doc.Validate(ctx))
	})

	t.Run("should expose the dispatch operations", func(t *testing.T) {
		operationIDs := make(map[string]bool)
		for _, pathItem := range doc.Paths.Map() {
			for _, operation := range pathItem.Operations() {
				require.NotEmpty(t, operation.OperationID)
				assert.False(t, operationIDs[operation.OperationID],
					"duplicate operationId %q", operation.OperationID)
				operationIDs[operation.OperationID] = true
			}
		}

		for _, operationID := range []string{
			"createOrder",
			"rejectOrder",
			"getActiveOrders",
			"getOrderRequirement",
			"assignVehicles",
			"enqueueOrder",
			"moveQueuedOrder",
			"removeFromQueue",
			"getWaitingQueue",
			"getDispatchBoard",
			"createVehicle",
			"getVehicles",
			"setVehicleDuty",
			"removeVehicle",
			"reportVehicleProgress",
		} {
			assert.True(t, operationIDs[operationID], "missing operationId %q", operationID)
		}
	})
}
