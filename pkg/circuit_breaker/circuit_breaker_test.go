package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openbookmanager/openbookmanager/pkg/circuit_breaker"
)

func Test_circuitBreaker_Call(t *testing.T) {
	ok := func() error { return nil }
	fail := func() error { return errors.New("service error") }

	t.Run("stays closed on successes", func(t *testing.T) {
		cb := circuit_breaker.New(10, time.Second, 0.5, 2)
		for i := 0; i < 50; i++ {
			require.NoError(t, cb.Call(ok))
		}
	})

	t.Run("opens after failure percentile and short-circuits", func(t *testing.T) {
		cb := circuit_breaker.New(4, time.Minute, 0.5, 2)
		require.Error(t, cb.Call(fail))
		require.Error(t, cb.Call(fail))
		// window is now 2/4 failed, breaker open
		err := cb.Call(ok)
		require.ErrorIs(t, err, circuit_breaker.ErrOpenCB)
	})

	t.Run("recovers through half-open", func(t *testing.T) {
		cb := circuit_breaker.New(4, 10*time.Millisecond, 0.5, 1)
		require.Error(t, cb.Call(fail))
		require.Error(t, cb.Call(fail))
		require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)

		time.Sleep(20 * time.Millisecond)

		// half-open: successes close it again
		require.NoError(t, cb.Call(ok))
		require.NoError(t, cb.Call(ok))
		require.NoError(t, cb.Call(ok))
	})

	t.Run("reset clears the window", func(t *testing.T) {
		cb := circuit_breaker.New(4, time.Minute, 0.5, 2)
		require.Error(t, cb.Call(fail))
		require.Error(t, cb.Call(fail))
		cb.Reset()
		require.NoError(t, cb.Call(ok))
	})
}
