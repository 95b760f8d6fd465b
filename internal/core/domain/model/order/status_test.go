package order_test

import (
	"fmt"
	"testing"

	"eatfit/internal/core/domain/model/order"
	"eatfit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Placed))
		assert.Equal(t, 2, int(order.Processing))
		assert.Equal(t, 3, int(order.OutForDelivery))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Placed,
			order.Processing,
			order.OutForDelivery,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Placed, "Order Placed"},
			{order.Processing, "Processing"},
			{order.OutForDelivery, "Out for Delivery"},
			{order.Delivered, "Delivered"},
			{order.Cancelled, "Cancelled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Unknown.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid wire representations", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected order.Status
		}{
			{"Order Placed", order.Placed},
			{"Processing", order.Processing},
			{"Out for Delivery", order.OutForDelivery},
			{"Delivered", order.Delivered},
			{"Cancelled", order.Cancelled},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				status, err := order.StatusFromString(tc.input)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		invalidInputs := []string{"", "placed", "ORDER PLACED", "Shipped", "Done"}

		for _, input := range invalidInputs {
			t.Run(fmt.Sprintf("should reject %q", input), func(t *testing.T) {
				status, err := order.StatusFromString(input)

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Equal(t, order.Unknown, status)
			})
		}
	})
}

func TestStatus_Next(t *testing.T) {
	t.Run("should advance through the autonomous sequence", func(t *testing.T) {
		next, ok := order.Placed.Next()
		require.True(t, ok)
		assert.Equal(t, order.Processing, next)

		next, ok = order.Processing.Next()
		require.True(t, ok)
		assert.Equal(t, order.OutForDelivery, next)

		next, ok = order.OutForDelivery.Next()
		require.True(t, ok)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("should have no successor after Delivered", func(t *testing.T) {
		_, ok := order.Delivered.Next()
		assert.False(t, ok)
	})

	t.Run("should have no successor for Cancelled", func(t *testing.T) {
		_, ok := order.Cancelled.Next()
		assert.False(t, ok)
	})

	t.Run("should have no successor for Unknown", func(t *testing.T) {
		_, ok := order.Unknown.Next()
		assert.False(t, ok)
	})
}

func TestStatus_IsFinal(t *testing.T) {
	assert.False(t, order.Placed.IsFinal())
	assert.False(t, order.Processing.IsFinal())
	assert.False(t, order.OutForDelivery.IsFinal())
	assert.True(t, order.Delivered.IsFinal())
	assert.True(t, order.Cancelled.IsFinal())
}
