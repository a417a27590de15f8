package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("errors.Is works correctly", func(t *testing.T) {
		require.True(t, errors.Is(ErrPanic, ErrPanic))
		require.False(t, errors.Is(ErrPanic, ErrPendingQueueFull))

		wrapped := fmt.Errorf("%w: merge limit 4", ErrPendingQueueFull)
		require.True(t, errors.Is(wrapped, ErrPendingQueueFull))
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			ErrInvalidConfig,
			ErrPanic,
			ErrPendingQueueFull,
			ErrAlreadyAssigned,
			ErrRefCountUnderflow,
			ErrSchedulerRunning,
			ErrSinkAlreadyBound,
			ErrDisposed,
			ErrClockBackwards,
		}

		for i, err1 := range allErrors {
			for j, err2 := range allErrors {
				if i == j {
					require.True(t, errors.Is(err1, err2), "error should equal itself: %v", err1)
				} else {
					require.False(t, errors.Is(err1, err2), "errors should be distinct: %v vs %v", err1, err2)
				}
			}
		}
	})
}

func TestPanicError(t *testing.T) {
	t.Run("string value", func(t *testing.T) {
		err := PanicError("boom")
		require.ErrorIs(t, err, ErrPanic)
		require.Contains(t, err.Error(), "boom")
	})

	t.Run("error value keeps identity", func(t *testing.T) {
		cause := errors.New("selector failed")
		err := PanicError(cause)
		require.ErrorIs(t, err, ErrPanic)
		require.ErrorIs(t, err, cause)
	})
}
