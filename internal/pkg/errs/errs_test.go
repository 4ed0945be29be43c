package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("Order does not exist: 123")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: Order does not exist: 123)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("newlines in the id are flattened", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "abc\ndef")
		assert.Equal(t, "object not found: abc def", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("A delivered order cannot be changed")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: A delivered order cannot be changed)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("deliverTo")

		assert.Equal(t, "deliverTo", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: deliverTo", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("Order must include a deliverTo")
		err := errs.NewValueIsRequiredErrorWithCause("deliverTo", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: deliverTo (cause: Order must include a deliverTo)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "1"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("dishes"), errs.ErrValueIsRequired)

	wrapped := fmt.Errorf("update order: %w", errs.NewValueIsInvalidError("status"))
	require.ErrorIs(t, wrapped, errs.ErrValueIsInvalid)
}

func TestCause(t *testing.T) {
	t.Run("returns the recorded cause through wrapping", func(t *testing.T) {
		cause := errors.New("Order must include a dish")
		err := fmt.Errorf("create order: %w", errs.NewValueIsRequiredErrorWithCause("dishes", cause))

		assert.Equal(t, cause, errs.Cause(err))
	})

	t.Run("falls back to the package error without a cause", func(t *testing.T) {
		inner := errs.NewObjectNotFoundError("orderId", "9")
		err := fmt.Errorf("lookup: %w", inner)

		assert.Equal(t, inner, errs.Cause(err))
	})

	t.Run("returns foreign errors unchanged", func(t *testing.T) {
		err := errors.New("boom")

		assert.Equal(t, err, errs.Cause(err))
	})
}
