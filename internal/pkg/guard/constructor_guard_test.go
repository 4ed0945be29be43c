package guard_test

import (
	"errors"
	"testing"

	"grubdash/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample shows a command-like type enforcing its
// constructor through an embedded guard.
func TestConstructorGuardUsageExample(t *testing.T) {
	type lookup struct {
		orderID string
		guard   guard.ConstructorGuard
	}

	errLookupNotConstructed := errors.New("lookup must be created via newLookup")

	newLookup := func(orderID string) (lookup, error) {
		if orderID == "" {
			return lookup{}, errors.New("order id is required")
		}
		return lookup{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		l, err := newLookup("f3a9")

		require.NoError(t, err)
		require.NoError(t, l.guard.Validate(errLookupNotConstructed))
		assert.Equal(t, "f3a9", l.orderID)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var l lookup

		err := l.guard.Validate(errLookupNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errLookupNotConstructed, err)
	})

	t.Run("constructor_rejects_empty_id", func(t *testing.T) {
		_, err := newLookup("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "order id is required")
	})
}
