package rx

// Option configures the runtime installed by Configure.
type Option func(*runtimeOptions)

// runtimeOptions holds optional runtime dependencies.
type runtimeOptions struct {
	logger  Logger
	metrics MetricsCollector
	hooks   *Hooks
}

// WithLogger sets the logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for Configure
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	rx.Configure(rx.DefaultConfig(), rx.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *runtimeOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector. It takes precedence over
// Config.MetricsNamespace.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for Configure
//
// Example:
//
//	reg := prometheus.NewRegistry()
//	rx.Configure(rx.DefaultConfig(), rx.WithMetrics(rx.NewPrometheusMetrics(reg, "myapp")))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *runtimeOptions) {
		o.metrics = metrics
	}
}

// WithHooks sets the global hooks. Nil callbacks are ignored.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for Configure
//
// Example:
//
//	rx.Configure(rx.DefaultConfig(), rx.WithHooks(&rx.Hooks{
//	    OnUnhandledError: func(err error) {
//	        sentry.CaptureException(err)
//	    },
//	}))
func WithHooks(hooks *Hooks) Option {
	return func(o *runtimeOptions) {
		o.hooks = hooks
	}
}
