package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rx"
	"github.com/arloliu/rx/scheduler"
)

func TestConfigure(t *testing.T) {
	t.Run("installs test config", func(t *testing.T) {
		Configure(t)

		cfg := rx.CurrentConfig()
		require.True(t, cfg.TraceResources)
		require.Equal(t, rx.TestConfig().ConcurrentWorkers, cfg.ConcurrentWorkers)
	})

	t.Run("restores default config", func(t *testing.T) {
		require.Equal(t, rx.DefaultConfig(), rx.CurrentConfig())
	})
}

func TestRequireNoLeaks(t *testing.T) {
	Configure(t)
	RequireNoLeaks(t, time.Second)

	vts := scheduler.NewVirtualTime(0)
	var got []int64
	sub := rx.SubscribeNext(rx.Interval(10*time.Nanosecond, vts), func(v int64) {
		got = append(got, v)
	})

	vts.AdvanceTo(30)
	sub.Dispose()

	require.Equal(t, []int64{0, 1, 2}, got)
}

func TestNewTestLogger(t *testing.T) {
	log := NewTestLogger(t)
	require.NotNil(t, log)
	require.NotPanics(t, func() {
		log.Info("message", "key", "value")
	})
}
