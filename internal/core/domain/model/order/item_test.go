package order_test

import (
	"testing"

	"eatfit/internal/core/domain/model/order"
	"eatfit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewItem("Pizza", 2, "Large", 9.99)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Pizza", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, "Large", item.Size())
		assert.InEpsilon(t, 9.99, item.UnitPrice(), 0.0001)
	})

	t.Run("should allow empty size", func(t *testing.T) {
		item, err := order.NewItem("Salad", 1, "", 4.50)

		require.NoError(t, err)
		assert.Empty(t, item.Size())
	})

	t.Run("should allow zero price", func(t *testing.T) {
		item, err := order.NewItem("Free Sample", 1, "", 0)

		require.NoError(t, err)
		assert.Zero(t, item.UnitPrice())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := order.NewItem("", 1, "", 1.00)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1, -100} {
			_, err := order.NewItem("Pizza", quantity, "", 1.00)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := order.NewItem("Pizza", 1, "", -0.01)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should collect all validation errors", func(t *testing.T) {
		_, err := order.NewItem("", 0, "", -1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("zero value item fails validation", func(t *testing.T) {
		var item order.Item

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrItemIsNotConstructed, err)
	})
}
