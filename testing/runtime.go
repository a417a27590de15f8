package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rx"
)

// Configure installs rx.TestConfig with a test logger as the process-wide
// runtime and restores rx.DefaultConfig when the test finishes.
//
// Options are applied after the test logger, so WithLogger overrides it.
// Tests calling Configure must not run in parallel with each other.
//
// Parameters:
//   - t: The test owning the runtime
//   - opts: Additional runtime options
func Configure(t testing.TB, opts ...rx.Option) {
	t.Helper()

	all := append([]rx.Option{rx.WithLogger(NewTestLogger(t))}, opts...)
	require.NoError(t, rx.Configure(rx.TestConfig(), all...))

	t.Cleanup(func() {
		require.NoError(t, rx.Configure(rx.DefaultConfig()))
	})
}

// RequireNoLeaks records the current number of live subscriptions and, when
// the test finishes, waits up to timeout for the count to return to it.
//
// Resource tracing must be enabled, typically through Configure. Register it
// after Configure so it runs before the runtime is restored.
//
// Parameters:
//   - t: The test to check
//   - timeout: How long asynchronous subscriptions may take to finish
func RequireNoLeaks(t testing.TB, timeout time.Duration) {
	t.Helper()

	require.True(t, rx.CurrentConfig().TraceResources, "resource tracing is disabled")
	base := rx.ResourceCount()

	t.Cleanup(func() {
		require.Eventually(t, func() bool {
			return rx.ResourceCount() == base
		}, timeout, 5*time.Millisecond, "subscriptions leaked: %d live, %d expected", rx.ResourceCount(), base)
	})
}
