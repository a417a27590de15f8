package rx

import (
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/rx/internal/hooks"
	"github.com/arloliu/rx/internal/logger"
	"github.com/arloliu/rx/internal/logging"
	"github.com/arloliu/rx/internal/metrics"
	"github.com/arloliu/rx/scheduler"
)

// runtime is the immutable snapshot of process-wide dependencies read on
// every subscribe. Configure swaps it atomically.
type runtime struct {
	cfg        Config
	logger     Logger
	metrics    MetricsCollector
	hooks      *Hooks
	concurrent *scheduler.ConcurrentScheduler
}

var (
	current atomic.Pointer[runtime]

	// tracker outlives runtime swaps so that subscriptions acquired under one
	// configuration are released against the same counter.
	tracker = metrics.NewResourceTracker()

	// promCollectors caches Prometheus collectors per namespace so that
	// reconfiguring never registers the same metrics twice.
	promCollectors = xsync.NewMap[string, *metrics.PrometheusCollector]()
)

func init() {
	rt, err := newRuntime(DefaultConfig(), nil)
	if err != nil {
		panic(err)
	}
	current.Store(rt)
}

// Configure validates cfg and installs it, together with the given options,
// as the process-wide runtime. Subscriptions created afterwards use the new
// runtime; existing subscriptions keep the one they started with.
//
// Parameters:
//   - cfg: Runtime configuration
//   - opts: WithLogger, WithMetrics, WithHooks
//
// Returns:
//   - error: Wrapped ErrInvalidConfig if cfg is invalid
//
// Example:
//
//	cfg := rx.DefaultConfig()
//	cfg.MaxPendingInner = 1024
//	if err := rx.Configure(cfg, rx.WithLogger(logger)); err != nil {
//	    return err
//	}
func Configure(cfg Config, opts ...Option) error {
	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	o := &runtimeOptions{}
	for _, opt := range opts {
		opt(o)
	}

	rt, err := newRuntime(cfg, o)
	if err != nil {
		return err
	}
	cfg.ValidateWithWarnings(rt.logger)

	tracker.SetEnabled(cfg.TraceResources)
	current.Store(rt)

	return nil
}

// CurrentConfig returns the configuration of the installed runtime.
func CurrentConfig() Config {
	return currentRuntime().cfg
}

// ResourceCount returns the number of live subscriptions when
// Config.TraceResources is enabled, and 0 otherwise.
//
// A subscription is live from Subscribe until it terminates or is disposed,
// so after every stream has finished the count must return to its previous
// value. Tests use it to detect leaked subscriptions.
func ResourceCount() int64 {
	return tracker.Count()
}

// DefaultScheduler returns the runtime's concurrent scheduler, used by
// time-based operators when no scheduler is given.
func DefaultScheduler() scheduler.Scheduler {
	return currentRuntime().concurrent
}

// NewPrometheusMetrics creates a Prometheus-backed MetricsCollector.
//
// Parameters:
//   - reg: Registerer for the metrics (prometheus.DefaultRegisterer if nil)
//   - namespace: Metric namespace ("rx" if empty)
//
// Returns:
//   - MetricsCollector: Collector registering its metrics on first use
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}

// NewSlogLogger adapts a slog.Logger to the Logger interface.
func NewSlogLogger(l *slog.Logger) Logger {
	return logging.NewSlog(l)
}

func currentRuntime() *runtime {
	return current.Load()
}

func newRuntime(cfg Config, o *runtimeOptions) (*runtime, error) {
	if o == nil {
		o = &runtimeOptions{}
	}

	rt := &runtime{cfg: cfg, hooks: hooks.Fill(o.hooks)}

	switch {
	case o.logger != nil:
		rt.logger = o.logger
	case cfg.LogLevel != "":
		l, err := logging.NewSlogText(os.Stderr, cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		rt.logger = l
	default:
		rt.logger = logger.NewNop()
	}

	switch {
	case o.metrics != nil:
		rt.metrics = o.metrics
	case cfg.MetricsNamespace != "":
		collector, _ := promCollectors.LoadOrStore(cfg.MetricsNamespace,
			metrics.NewPrometheus(prometheus.DefaultRegisterer, cfg.MetricsNamespace))
		rt.metrics = collector
	default:
		rt.metrics = metrics.NewNop()
	}

	rt.concurrent = scheduler.NewConcurrent(
		scheduler.WithWorkers(cfg.ConcurrentWorkers),
		scheduler.WithLogger(rt.logger),
		scheduler.WithMetrics(rt.metrics),
	)

	return rt, nil
}

// reportDropped records an event discarded by operator for reason.
func (rt *runtime) reportDropped(operator, reason string) {
	rt.metrics.RecordDroppedEvent(operator, reason)
	rt.hooks.OnDroppedEvent(operator, reason)
}

// reportUnhandled records an Error event nobody handled.
func (rt *runtime) reportUnhandled(err error) {
	rt.metrics.RecordUnhandledError()
	rt.logger.Error("unhandled stream error", "error", err)
	rt.hooks.OnUnhandledError(err)
}
