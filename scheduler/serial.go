package scheduler

import (
	"sync"
	"time"

	"github.com/arloliu/rx/disposable"
	"github.com/arloliu/rx/internal/queue"
	"github.com/arloliu/rx/types"
)

const serialName = "serial"

// SerialScheduler runs actions one at a time, in submission order, on a
// background goroutine.
//
// The drain goroutine is started on demand and exits as soon as the queue is
// empty, so an idle scheduler holds no goroutine. A panic raised by an action
// is recovered and logged; it does not stop the scheduler.
type SerialScheduler struct {
	mu      sync.Mutex
	pending *queue.Queue[*scheduledItem]
	running bool
	opts    options
}

var _ Scheduler = (*SerialScheduler)(nil)

// NewSerial creates a serial scheduler.
//
// Parameters:
//   - opts: WithLogger, WithMetrics
//
// Returns:
//   - *SerialScheduler: Idle scheduler
func NewSerial(opts ...Option) *SerialScheduler {
	return &SerialScheduler{
		pending: queue.New[*scheduledItem](),
		opts:    newOptions(opts),
	}
}

// Now returns the wall clock time.
func (s *SerialScheduler) Now() time.Time {
	return time.Now()
}

// Schedule queues action behind every previously scheduled action.
func (s *SerialScheduler) Schedule(action Action) types.Disposable {
	item := newScheduledItem(action)
	s.opts.metrics.RecordScheduled(serialName)

	s.mu.Lock()
	s.pending.Enqueue(item)
	start := !s.running
	s.running = true
	s.mu.Unlock()

	if start {
		go s.drain()
	}

	return item
}

// ScheduleRelative queues action once due has elapsed.
func (s *SerialScheduler) ScheduleRelative(due time.Duration, action Action) types.Disposable {
	if due <= 0 {
		return s.Schedule(action)
	}

	slot := disposable.NewSerial()
	timer := time.AfterFunc(due, func() {
		slot.Set(s.Schedule(action))
	})
	slot.Set(disposable.Create(func() { timer.Stop() }))

	return slot
}

func (s *SerialScheduler) drain() {
	for {
		s.mu.Lock()
		item, ok := s.pending.Dequeue()
		if !ok {
			s.running = false
			s.mu.Unlock()

			return
		}
		s.mu.Unlock()

		runGuarded(serialName, item, s.opts)
	}
}

// runGuarded invokes item, turning a panic into a log entry and a metric.
func runGuarded(name string, item *scheduledItem, opts options) {
	defer func() {
		if r := recover(); r != nil {
			opts.metrics.RecordActionPanic(name)
			opts.logger.Error("scheduled action panicked",
				"scheduler", name,
				"error", types.PanicError(r))
		}
	}()

	item.invoke()
}
