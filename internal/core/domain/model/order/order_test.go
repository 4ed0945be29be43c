package order_test

import (
	"testing"

	"grubdash/internal/core/domain/model/order"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails(t *testing.T) order.Details {
	t.Helper()
	d, err := order.NewDetails(validDraft())
	require.NoError(t, err)
	return d
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order without status", func(t *testing.T) {
		o, err := order.NewOrder("abc123", validDetails(t))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "abc123", o.ID())
		assert.Equal(t, "120 Main St", o.DeliverTo())
		assert.Equal(t, "555-1234", o.MobileNumber())
		assert.Len(t, o.Dishes(), 1)
		assert.Equal(t, order.Unset, o.Status())
	})

	t.Run("should fail with empty id", func(t *testing.T) {
		o, err := order.NewOrder("", validDetails(t))

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
	})

	t.Run("should fail with unconstructed details", func(t *testing.T) {
		o, err := order.NewOrder("abc123", order.Details{})

		require.ErrorIs(t, err, order.ErrDetailsIsNotConstructed)
		assert.Nil(t, o)
	})

	t.Run("should join multiple validation errors", func(t *testing.T) {
		_, err := order.NewOrder("", order.Details{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is required: id")
		assert.Contains(t, err.Error(), "Details must be created via NewDetails")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore any legal status", func(t *testing.T) {
		for _, s := range append(order.Statuses(), order.Unset) {
			o, err := order.RestoreOrder("abc123", validDetails(t), s)
			require.NoError(t, err)
			assert.Equal(t, s, o.Status())
		}
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		o, err := order.RestoreOrder("abc123", validDetails(t), "lost")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order
		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	o1, _ := order.NewOrder("a", validDetails(t))
	o2, _ := order.RestoreOrder("a", validDetails(t), order.Preparing)
	o3, _ := order.NewOrder("b", validDetails(t))

	assert.True(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(o3))
	assert.False(t, o1.IsEqual(nil))
}

func TestOrder_Replace(t *testing.T) {
	updated := func(t *testing.T) order.Details {
		t.Helper()
		draft := validDraft()
		draft.DeliverTo = "Rick's place"
		draft.Dishes[0].Quantity = intPtr(5)
		d, err := order.NewDetails(draft)
		require.NoError(t, err)
		return d
	}

	t.Run("should replace details and status", func(t *testing.T) {
		o, _ := order.NewOrder("abc123", validDetails(t))

		err := o.Replace("", updated(t), "preparing")

		require.NoError(t, err)
		assert.Equal(t, "abc123", o.ID())
		assert.Equal(t, "Rick's place", o.DeliverTo())
		assert.Equal(t, 5, o.Dishes()[0].Quantity)
		assert.Equal(t, order.Preparing, o.Status())
	})

	t.Run("should accept a matching payload id", func(t *testing.T) {
		o, _ := order.NewOrder("abc123", validDetails(t))

		require.NoError(t, o.Replace("abc123", updated(t), "pending"))
	})

	t.Run("should reject a mismatched id before looking at status", func(t *testing.T) {
		o, _ := order.NewOrder("abc123", validDetails(t))

		err := o.Replace("zzz", updated(t), "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t,
			"Order id does not match route id. Order: zzz, Route: abc123",
			errs.Cause(err).Error())
		assert.Equal(t, "120 Main St", o.DeliverTo())
	})

	for _, raw := range []string{"", "invalid"} {
		t.Run("should reject status "+raw, func(t *testing.T) {
			o, _ := order.NewOrder("abc123", validDetails(t))

			err := o.Replace("", updated(t), raw)

			assert.Equal(t, order.ErrStatusIsInvalid, errs.Cause(err))
			assert.Equal(t, order.Unset, o.Status())
		})
	}

	t.Run("should leave a delivered order untouched", func(t *testing.T) {
		o, _ := order.RestoreOrder("abc123", validDetails(t), order.Delivered)

		err := o.Replace("", updated(t), "pending")

		assert.Equal(t, order.ErrDeliveredOrderIsImmutable, errs.Cause(err))
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, "120 Main St", o.DeliverTo())
	})

	t.Run("should refuse to mark an order delivered", func(t *testing.T) {
		o, _ := order.NewOrder("abc123", validDetails(t))

		err := o.Replace("", updated(t), "delivered")

		assert.Equal(t, order.ErrDeliveredOrderIsImmutable, errs.Cause(err))
		assert.Equal(t, order.Unset, o.Status())
	})
}

func TestOrder_ValidateDelete(t *testing.T) {
	fresh, _ := order.NewOrder("a", validDetails(t))
	require.NoError(t, fresh.ValidateDelete())

	preparing, _ := order.RestoreOrder("b", validDetails(t), order.Preparing)
	err := preparing.ValidateDelete()
	assert.Equal(t, order.ErrOrderIsNotPending, errs.Cause(err))
}

func TestNewNotFoundError(t *testing.T) {
	err := order.NewNotFoundError("nope")

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, "orderId", err.ParamName)
	assert.Equal(t, "Order does not exist: nope", errs.Cause(err).Error())
}
