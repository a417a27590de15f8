package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/rx/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are created and registered lazily on first use, so constructing a
// collector that is never exercised leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	subscribes      *prometheus.CounterVec
	disposes        *prometheus.CounterVec
	droppedEvents   *prometheus.CounterVec
	unhandledErrors prometheus.Counter
	pendingInner    *prometheus.GaugeVec
	scheduled       *prometheus.CounterVec
	actionPanics    *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "rx" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "rx"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.subscribes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "subscription",
			Name:      "subscribes_total",
			Help:      "Total subscriptions by operator.",
		}, []string{"operator"})

		p.disposes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "subscription",
			Name:      "disposes_total",
			Help:      "Total released subscriptions by operator.",
		}, []string{"operator"})

		p.droppedEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "subscription",
			Name:      "dropped_events_total",
			Help:      "Events not forwarded downstream by operator and reason.",
		}, []string{"operator", "reason"})

		p.unhandledErrors = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "subscription",
			Name:      "unhandled_errors_total",
			Help:      "Error events delivered to subscribers without an error handler.",
		})

		p.pendingInner = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "merge",
			Name:      "pending_inner",
			Help:      "Inner sequences waiting for a concurrency slot.",
		}, []string{"operator"})

		p.scheduled = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "scheduled_total",
			Help:      "Actions submitted by scheduler kind.",
		}, []string{"scheduler"})

		p.actionPanics = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "action_panics_total",
			Help:      "Panics recovered while running scheduled actions.",
		}, []string{"scheduler"})

		p.reg.MustRegister(p.subscribes)
		p.reg.MustRegister(p.disposes)
		p.reg.MustRegister(p.droppedEvents)
		p.reg.MustRegister(p.unhandledErrors)
		p.reg.MustRegister(p.pendingInner)
		p.reg.MustRegister(p.scheduled)
		p.reg.MustRegister(p.actionPanics)
	})
}

// SubscriptionMetrics implementation

// RecordSubscribe increments the subscribe counter for operator.
func (p *PrometheusCollector) RecordSubscribe(operator string) {
	p.ensureRegistered()
	p.subscribes.WithLabelValues(operator).Inc()
}

// RecordDispose increments the dispose counter for operator.
func (p *PrometheusCollector) RecordDispose(operator string) {
	p.ensureRegistered()
	p.disposes.WithLabelValues(operator).Inc()
}

// RecordDroppedEvent increments the dropped event counter.
func (p *PrometheusCollector) RecordDroppedEvent(operator string, reason string) {
	p.ensureRegistered()
	p.droppedEvents.WithLabelValues(operator, reason).Inc()
}

// RecordUnhandledError increments the unhandled error counter.
func (p *PrometheusCollector) RecordUnhandledError() {
	p.ensureRegistered()
	p.unhandledErrors.Inc()
}

// SetPendingInner sets the pending inner sequence gauge.
func (p *PrometheusCollector) SetPendingInner(operator string, count int) {
	p.ensureRegistered()
	p.pendingInner.WithLabelValues(operator).Set(float64(count))
}

// SchedulerMetrics implementation

// RecordScheduled increments the scheduled action counter.
func (p *PrometheusCollector) RecordScheduled(scheduler string) {
	p.ensureRegistered()
	p.scheduled.WithLabelValues(scheduler).Inc()
}

// RecordActionPanic increments the action panic counter.
func (p *PrometheusCollector) RecordActionPanic(scheduler string) {
	p.ensureRegistered()
	p.actionPanics.WithLabelValues(scheduler).Inc()
}
