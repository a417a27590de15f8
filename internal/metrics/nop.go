// Package metrics provides the MetricsCollector implementations of the rx
// runtime and the process-wide resource tracker.
package metrics

import "github.com/arloliu/rx/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the default collector of the rx runtime
// and of every scheduler.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	s := scheduler.NewSerial(scheduler.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// SubscriptionMetrics implementation

// RecordSubscribe discards the subscribe metric.
func (n *NopMetrics) RecordSubscribe(_ /* operator */ string) {
	// No-op
}

// RecordDispose discards the dispose metric.
func (n *NopMetrics) RecordDispose(_ /* operator */ string) {
	// No-op
}

// RecordDroppedEvent discards the dropped event metric.
func (n *NopMetrics) RecordDroppedEvent(_ /* operator */, _ /* reason */ string) {
	// No-op
}

// RecordUnhandledError discards the unhandled error metric.
func (n *NopMetrics) RecordUnhandledError() {
	// No-op
}

// SetPendingInner discards the pending inner sequence gauge.
func (n *NopMetrics) SetPendingInner(_ /* operator */ string, _ /* count */ int) {
	// No-op
}

// SchedulerMetrics implementation

// RecordScheduled discards the scheduled action metric.
func (n *NopMetrics) RecordScheduled(_ /* scheduler */ string) {
	// No-op
}

// RecordActionPanic discards the action panic metric.
func (n *NopMetrics) RecordActionPanic(_ /* scheduler */ string) {
	// No-op
}
