package rx

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/rx/internal/logger"
	"github.com/arloliu/rx/internal/testutil"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 0, cfg.ConcurrentWorkers)
	require.Equal(t, 0, cfg.MaxPendingInner)
	require.False(t, cfg.TraceResources)
	require.Empty(t, cfg.MetricsNamespace)
	require.Empty(t, cfg.LogLevel)
	require.NoError(t, cfg.Validate())
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()

	require.True(t, cfg.TraceResources)
	require.Equal(t, 4, cfg.ConcurrentWorkers)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("resets negative worker count", func(t *testing.T) {
		cfg := Config{ConcurrentWorkers: -3}
		SetDefaults(&cfg)

		require.Equal(t, 0, cfg.ConcurrentWorkers)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			ConcurrentWorkers: 16,
			MaxPendingInner:   128,
			TraceResources:    true,
			MetricsNamespace:  "app",
			LogLevel:          "debug",
		}
		SetDefaults(&cfg)

		require.Equal(t, 16, cfg.ConcurrentWorkers)
		require.Equal(t, 128, cfg.MaxPendingInner)
		require.True(t, cfg.TraceResources)
		require.Equal(t, "app", cfg.MetricsNamespace)
		require.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("parses YAML", func(t *testing.T) {
		data := []byte(`
concurrentWorkers: 8
maxPendingInner: 64
traceResources: true
metricsNamespace: stream
logLevel: warn
`)
		cfg, err := LoadConfig(data)
		require.NoError(t, err)

		require.Equal(t, 8, cfg.ConcurrentWorkers)
		require.Equal(t, 64, cfg.MaxPendingInner)
		require.True(t, cfg.TraceResources)
		require.Equal(t, "stream", cfg.MetricsNamespace)
		require.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("empty document yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig(nil)
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, err := LoadConfig([]byte("concurrentWorkers: [1"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse config")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadConfig([]byte("maxPendingInner: -1"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "negative workers", mutate: func(cfg *Config) { cfg.ConcurrentWorkers = -1 }, wantErr: true},
		{name: "negative pending limit", mutate: func(cfg *Config) { cfg.MaxPendingInner = -1 }, wantErr: true},
		{name: "valid namespace", mutate: func(cfg *Config) { cfg.MetricsNamespace = "my_app" }},
		{name: "namespace with dash", mutate: func(cfg *Config) { cfg.MetricsNamespace = "my-app" }, wantErr: true},
		{name: "namespace starting with digit", mutate: func(cfg *Config) { cfg.MetricsNamespace = "1app" }, wantErr: true},
		{name: "known log level", mutate: func(cfg *Config) { cfg.LogLevel = "error" }},
		{name: "unknown log level", mutate: func(cfg *Config) { cfg.LogLevel = "verbose" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestConfigValidateWithWarnings(t *testing.T) {
	t.Run("quiet for defaults", func(t *testing.T) {
		log := logger.NewTest(t)
		cfg := DefaultConfig()
		cfg.ValidateWithWarnings(log)

		require.Empty(t, log.Entries("WARN"))
	})

	t.Run("warns on tracing and tiny pending limit", func(t *testing.T) {
		log := logger.NewTest(t)
		cfg := DefaultConfig()
		cfg.TraceResources = true
		cfg.MaxPendingInner = 2
		cfg.ValidateWithWarnings(log)

		require.Len(t, log.Entries("WARN"), 2)
	})
}

func TestConfigure(t *testing.T) {
	t.Run("rejects invalid config and keeps runtime", func(t *testing.T) {
		before := CurrentConfig()

		err := Configure(Config{MaxPendingInner: -5})
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.Equal(t, before, CurrentConfig())
	})

	t.Run("installs config and collectors", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		cfg := DefaultConfig()
		cfg.MaxPendingInner = 32
		configureForTest(t, cfg, WithMetrics(NewPrometheusMetrics(reg, "t")))

		require.Equal(t, 32, CurrentConfig().MaxPendingInner)

		rec := testutil.NewRecorder[int]()
		Of(1, 2).Subscribe(rec)
		require.True(t, rec.Completed())

		families, err := reg.Gather()
		require.NoError(t, err)

		names := make([]string, 0, len(families))
		for _, f := range families {
			names = append(names, f.GetName())
		}
		require.Contains(t, names, "t_subscription_subscribes_total")
		require.Contains(t, names, "t_subscription_disposes_total")
	})

	t.Run("default scheduler follows worker count", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.ConcurrentWorkers = 3
		configureForTest(t, cfg)

		require.NotNil(t, DefaultScheduler())
		require.Equal(t, 3, currentRuntime().concurrent.Workers())
	})
}
