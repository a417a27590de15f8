package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods are called from arbitrary goroutines, often while an operator holds
// its own lock, and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	SubscriptionMetrics
	SchedulerMetrics
}

// SubscriptionMetrics defines metrics for the subscription lifecycle.
type SubscriptionMetrics interface {
	// RecordSubscribe records a new subscription to an operator.
	//
	// Parameters:
	//   - operator: Operator name ("merge", "switch", "concat", ...)
	RecordSubscribe(operator string)

	// RecordDispose records the release of an operator subscription.
	//
	// Parameters:
	//   - operator: Operator name
	RecordDispose(operator string)

	// RecordDroppedEvent records an event that was not forwarded downstream.
	//
	// Parameters:
	//   - operator: Operator name
	//   - reason: Drop reason ("after_terminal", "stale_generation", "disposed")
	RecordDroppedEvent(operator string, reason string)

	// RecordUnhandledError records an Error event that reached a subscriber without an error handler.
	RecordUnhandledError()

	// SetPendingInner sets the number of queued inner sequences of a bounded merge (gauge metric).
	//
	// Parameters:
	//   - operator: Operator name
	//   - count: Current pending queue length
	SetPendingInner(operator string, count int)
}

// SchedulerMetrics defines metrics for scheduler operations.
type SchedulerMetrics interface {
	// RecordScheduled records an action submitted to a scheduler.
	//
	// Parameters:
	//   - scheduler: Scheduler kind ("current_thread", "serial", "concurrent", "virtual")
	RecordScheduled(scheduler string)

	// RecordActionPanic records a panic recovered while running a scheduled action.
	//
	// Parameters:
	//   - scheduler: Scheduler kind
	RecordActionPanic(scheduler string)
}
