package rx

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/rx/internal/logging"
)

// metricsNamespacePattern matches the legacy Prometheus name charset, so the
// namespace stays valid regardless of the registry's validation scheme.
var metricsNamespacePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Config is the process-wide runtime configuration.
type Config struct {
	// ConcurrentWorkers bounds the number of actions the default concurrent
	// scheduler runs at once. Used by Timer, Interval and any operator given
	// a nil scheduler. 0 means GOMAXPROCS.
	ConcurrentWorkers int `yaml:"concurrentWorkers"`

	// MaxPendingInner bounds the pending queue of MergeLimited. When the queue
	// is full the merged sequence fails with ErrPendingQueueFull.
	// 0 means unbounded.
	MaxPendingInner int `yaml:"maxPendingInner"`

	// TraceResources counts live subscriptions; see ResourceCount.
	TraceResources bool `yaml:"traceResources"`

	// MetricsNamespace enables Prometheus metrics on the default registerer
	// under this namespace. Empty disables them. Ignored when WithMetrics is
	// passed to Configure.
	MetricsNamespace string `yaml:"metricsNamespace"`

	// LogLevel enables a text slog logger on stderr at this level
	// ("debug", "info", "warn", "error"). Empty disables logging. Ignored when
	// WithLogger is passed to Configure.
	LogLevel string `yaml:"logLevel"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		ConcurrentWorkers: 0,
		MaxPendingInner:   0,
		TraceResources:    false,
	}
}

// TestConfig returns a configuration for tests: resource tracing on and a
// small, fixed concurrent worker pool.
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.TraceResources = true
	cfg.ConcurrentWorkers = 4

	return cfg
}

// SetDefaults fills in missing configuration values.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.ConcurrentWorkers < 0 {
		cfg.ConcurrentWorkers = defaults.ConcurrentWorkers
	}
}

// LoadConfig parses a YAML document into a Config with defaults applied.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: Parsed and validated configuration
//   - error: Parse error or wrapped ErrInvalidConfig
//
// Example:
//
//	data, _ := os.ReadFile("rx.yaml")
//	cfg, err := rx.LoadConfig(data)
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks configuration constraints.
//
// Returns:
//   - error: Wrapped ErrInvalidConfig describing the first violation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.ConcurrentWorkers < 0 {
		return fmt.Errorf("%w: ConcurrentWorkers must be >= 0, got %d", ErrInvalidConfig, cfg.ConcurrentWorkers)
	}

	if cfg.MaxPendingInner < 0 {
		return fmt.Errorf("%w: MaxPendingInner must be >= 0, got %d", ErrInvalidConfig, cfg.MaxPendingInner)
	}

	if cfg.MetricsNamespace != "" && !metricsNamespacePattern.MatchString(cfg.MetricsNamespace) {
		return fmt.Errorf("%w: MetricsNamespace %q is not a valid metric name prefix", ErrInvalidConfig, cfg.MetricsNamespace)
	}

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return err
	}

	return nil
}

// ValidateWithWarnings logs warnings for values that are valid but risky.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if cfg.TraceResources {
		logger.Warn("resource tracing is enabled, every subscribe and dispose is counted",
			"traceResources", cfg.TraceResources,
		)
	}

	if cfg.MaxPendingInner > 0 && cfg.MaxPendingInner < 4 {
		logger.Warn("MaxPendingInner is very small, bounded merges may fail under normal bursts",
			"maxPendingInner", cfg.MaxPendingInner,
			"recommended", "0 (unbounded) or 16 and higher",
		)
	}
}
