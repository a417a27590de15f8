package scheduler

import (
	"time"

	"github.com/arloliu/rx/disposable"
	"github.com/arloliu/rx/internal/logger"
	"github.com/arloliu/rx/internal/metrics"
	"github.com/arloliu/rx/types"
)

// Action is a unit of scheduled work. The returned disposable, which may be
// nil, is released when the schedule disposable is disposed.
type Action = func() types.Disposable

// Immediate schedules work to run as soon as possible.
type Immediate interface {
	// Schedule submits action and returns a disposable that cancels it if it
	// has not started yet.
	Schedule(action Action) types.Disposable
}

// Scheduler is an Immediate scheduler with a clock and delayed scheduling.
type Scheduler interface {
	Immediate

	// Now returns the scheduler's notion of the current time.
	Now() time.Time

	// ScheduleRelative submits action to run after due has elapsed on the
	// scheduler's clock. A non-positive due behaves like Schedule.
	ScheduleRelative(due time.Duration, action Action) types.Disposable
}

// ScheduleState schedules action with an explicit state argument.
//
// Parameters:
//   - s: Target scheduler
//   - state: Value passed to action
//   - action: Work to run
//
// Returns:
//   - types.Disposable: Cancels the action if it has not started yet
func ScheduleState[S any](s Immediate, state S, action func(state S) types.Disposable) types.Disposable {
	return s.Schedule(func() types.Disposable {
		return action(state)
	})
}

// Option configures a scheduler.
type Option func(*options)

type options struct {
	logger  types.Logger
	metrics types.MetricsCollector
	workers int
}

func newOptions(opts []Option) options {
	o := options{
		logger:  logger.NewNop(),
		metrics: metrics.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger sets the logger used to report panics raised by actions.
//
// Parameters:
//   - l: Logger implementation
//
// Returns:
//   - Option: Functional option
func WithLogger(l types.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics sets the metrics collector.
//
// Parameters:
//   - m: Metrics collector implementation
//
// Returns:
//   - Option: Functional option
func WithMetrics(m types.MetricsCollector) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithWorkers bounds the number of actions a ConcurrentScheduler runs at once.
// Values below one are ignored.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// scheduledItem is a queued action paired with its cancellation handle.
type scheduledItem struct {
	action Action
	handle *disposable.SingleAssignmentDisposable
}

func newScheduledItem(action Action) *scheduledItem {
	return &scheduledItem{action: action, handle: disposable.NewSingleAssignment()}
}

// invoke runs the action unless the item was disposed first.
func (i *scheduledItem) invoke() {
	if i.handle.IsDisposed() {
		return
	}
	i.handle.Set(orNop(i.action()))
}

func (i *scheduledItem) Dispose() {
	i.handle.Dispose()
}

func (i *scheduledItem) IsDisposed() bool {
	return i.handle.IsDisposed()
}

func orNop(d types.Disposable) types.Disposable {
	if d == nil {
		return disposable.Nop()
	}

	return d
}
