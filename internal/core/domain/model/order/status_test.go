package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, "PENDING", order.Pending.String())
	assert.Equal(t, "PROCESSING", order.Processing.String())
	assert.Equal(t, "COMPLETED", order.Completed.String())
	assert.Equal(t, "CANCELLED", order.Cancelled.String())
}

func TestStatus_IsKnown(t *testing.T) {
	for _, status := range order.KnownStatuses() {
		assert.True(t, status.IsKnown(), "%s should be known", status)
	}

	for _, status := range []order.Status{"", "pending", "SHIPPED"} {
		assert.False(t, status.IsKnown(), "%q should not be known", status)
	}
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should transition from Pending to Cancelled", func(t *testing.T) {
		newStatus, err := order.Pending.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	testCases := []struct {
		name   string
		status order.Status
	}{
		{"processing", order.Processing},
		{"completed", order.Completed},
		{"cancelled", order.Cancelled},
		{"free-form", order.Status("ON_HOLD")},
		{"empty", order.Status("")},
	}

	for _, tc := range testCases {
		t.Run("should reject cancel from "+tc.name, func(t *testing.T) {
			newStatus, err := tc.status.Cancel()

			require.Error(t, err)
			assert.IsType(t, &errs.PreconditionFailedError{}, err)
			assert.Contains(t, err.Error(), "cannot cancel order with status "+tc.status.String())
			assert.Equal(t, tc.status, newStatus)
		})
	}
}
