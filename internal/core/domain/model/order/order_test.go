package order_test

import (
	"testing"
	"time"

	"eatfit/internal/core/domain/model/kernel"
	"eatfit/internal/core/domain/model/order"
	"eatfit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()

	pizza, err := order.NewItem("Pizza", 1, "Large", 9.99)
	require.NoError(t, err)
	cola, err := order.NewItem("Cola", 2, "", 1.50)
	require.NoError(t, err)

	return []order.Item{pizza, cola}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order in Placed status", func(t *testing.T) {
		id := kernel.NewUUID()
		ownerID := kernel.NewUUID()
		items := testItems(t)

		o, err := order.NewOrder(id, ownerID, items, "12 Main St", order.UPI)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.OwnerID().IsEqual(ownerID))
		assert.Equal(t, items, o.Items())
		assert.Equal(t, "12 Main St", o.DeliveryAddress())
		assert.Equal(t, order.UPI, o.PaymentMethod())
		assert.Equal(t, order.Placed, o.Status())
		assert.False(t, o.CreatedAt().IsZero())
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), testItems(t), "12 Main St", order.UPI)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid owner id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, testItems(t), "12 Main St", order.UPI)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, "12 Main St", order.UPI)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed item", func(t *testing.T) {
		items := []order.Item{{}}

		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, "12 Main St", order.UPI)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("should reject empty address", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testItems(t), "", order.UPI)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid payment method", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testItems(t), "12 Main St", order.UnknownPaymentMethod)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore persisted order", func(t *testing.T) {
		id := kernel.NewUUID()
		ownerID := kernel.NewUUID()
		items := testItems(t)
		createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(10 * time.Second)

		o, err := order.RestoreOrder(id, ownerID, items, "12 Main St", order.CashOnDelivery,
			order.OutForDelivery, createdAt, updatedAt)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("should reject invalid persisted status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), testItems(t), "12 Main St",
			order.UPI, order.Unknown, time.Now(), time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newTestOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testItems(t), "12 Main St", order.UPI)
		require.NoError(t, err)
		return o
	}

	t.Run("should set status and advance updatedAt", func(t *testing.T) {
		o := newTestOrder(t)
		before := o.UpdatedAt()

		time.Sleep(time.Millisecond)
		err := o.ChangeStatus(order.Processing)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, o.Status())
		assert.True(t, o.UpdatedAt().After(before), "updatedAt must be strictly later")
	})

	t.Run("should allow any valid status from any state", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Delivered))
		require.NoError(t, o.ChangeStatus(order.Processing))
		require.NoError(t, o.ChangeStatus(order.Cancelled))
		require.NoError(t, o.ChangeStatus(order.OutForDelivery))
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.Unknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Placed, o.Status())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		o := &order.Order{}
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	items := testItems(t)
	id := kernel.NewUUID()

	first, err := order.NewOrder(id, kernel.NewUUID(), items, "12 Main St", order.UPI)
	require.NoError(t, err)
	second, err := order.NewOrder(id, kernel.NewUUID(), items, "34 Side St", order.CreditCard)
	require.NoError(t, err)
	third, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, "12 Main St", order.UPI)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(third))
	assert.False(t, first.IsEqual(nil))
}

func TestOrder_ItemsReturnsCopy(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), testItems(t), "12 Main St", order.UPI)
	require.NoError(t, err)

	items := o.Items()
	items[0] = order.Item{}

	require.NoError(t, o.Items()[0].Validate())
}
