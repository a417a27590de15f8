package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/arloliu/rx/internal/queue"
	"github.com/arloliu/rx/types"
)

const virtualName = "virtual"

// VirtualTimeScheduler executes actions against a logical clock.
//
// The clock is an int64 tick count; relative durations are converted with
// one nanosecond per tick so that time.Duration values can be used directly
// in tests. Time only moves when AdvanceTo, AdvanceBy, Start or Sleep is
// called. Actions due at the same tick run in the order they were scheduled.
//
// Actions run on the goroutine that advances the clock. Scheduling from other
// goroutines is safe; advancing from two goroutines at once, or from inside an
// action, panics with types.ErrSchedulerRunning.
type VirtualTimeScheduler struct {
	mu      sync.Mutex
	clock   int64
	seq     uint64
	running bool
	pending *queue.PriorityQueue[*virtualItem]
	opts    options
}

type virtualItem struct {
	*scheduledItem
	due int64
	seq uint64
}

var _ Scheduler = (*VirtualTimeScheduler)(nil)

// NewVirtualTime creates a virtual time scheduler whose clock starts at initial.
//
// Parameters:
//   - initial: Initial clock value in ticks
//   - opts: WithMetrics
//
// Returns:
//   - *VirtualTimeScheduler: Stopped scheduler
func NewVirtualTime(initial int64, opts ...Option) *VirtualTimeScheduler {
	return &VirtualTimeScheduler{
		clock: initial,
		pending: queue.NewPriority(func(a, b *virtualItem) bool {
			if a.due != b.due {
				return a.due < b.due
			}

			return a.seq < b.seq
		}),
		opts: newOptions(opts),
	}
}

// Clock returns the current tick.
func (s *VirtualTimeScheduler) Clock() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clock
}

// Now returns the clock as a time value, one nanosecond per tick since the Unix epoch.
func (s *VirtualTimeScheduler) Now() time.Time {
	return time.Unix(0, s.Clock()).UTC()
}

// IsRunning reports whether the clock is currently being advanced.
func (s *VirtualTimeScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// Pending returns the number of queued actions, including disposed ones not yet skipped.
func (s *VirtualTimeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pending.Len()
}

// Schedule queues action at the current tick.
func (s *VirtualTimeScheduler) Schedule(action Action) types.Disposable {
	return s.ScheduleAbsolute(s.Clock(), action)
}

// ScheduleRelative queues action due ticks after the current tick.
func (s *VirtualTimeScheduler) ScheduleRelative(due time.Duration, action Action) types.Disposable {
	s.mu.Lock()
	at := s.clock
	s.mu.Unlock()

	if due > 0 {
		at += int64(due)
	}

	return s.ScheduleAbsolute(at, action)
}

// ScheduleAbsolute queues action at tick due. A due in the past runs at the
// next opportunity, ordered before later ticks.
//
// Parameters:
//   - due: Absolute tick
//   - action: Work to run
//
// Returns:
//   - types.Disposable: Cancels the action if it has not run yet
func (s *VirtualTimeScheduler) ScheduleAbsolute(due int64, action Action) types.Disposable {
	s.opts.metrics.RecordScheduled(virtualName)

	s.mu.Lock()
	s.seq++
	item := &virtualItem{scheduledItem: newScheduledItem(action), due: due, seq: s.seq}
	s.pending.Enqueue(item)
	s.mu.Unlock()

	return item
}

// Start runs every queued action, including actions they schedule, until the
// queue is empty or Stop is called. The clock ends at the tick of the last
// action run.
func (s *VirtualTimeScheduler) Start() {
	s.enter()
	defer s.leave()

	for {
		item, ok := s.next(nil)
		if !ok {
			return
		}
		item.invoke()
	}
}

// AdvanceTo runs every action due at or before tick t, then sets the clock to t.
//
// Panics with types.ErrClockBackwards if t is before the current tick and
// with types.ErrSchedulerRunning if the clock is already being advanced.
func (s *VirtualTimeScheduler) AdvanceTo(t int64) {
	s.mu.Lock()
	if t < s.clock {
		clock := s.clock
		s.mu.Unlock()
		panic(fmt.Errorf("%w: advance to %d from %d", types.ErrClockBackwards, t, clock))
	}
	s.mu.Unlock()

	s.enter()
	defer s.leave()

	for {
		item, ok := s.next(&t)
		if !ok {
			break
		}
		item.invoke()
	}

	s.mu.Lock()
	if s.running && s.clock < t {
		s.clock = t
	}
	s.mu.Unlock()
}

// AdvanceBy advances the clock by d ticks, running every action due meanwhile.
func (s *VirtualTimeScheduler) AdvanceBy(d time.Duration) {
	s.AdvanceTo(s.Clock() + int64(d))
}

// Sleep moves the clock forward by d ticks without running any action.
func (s *VirtualTimeScheduler) Sleep(d time.Duration) {
	if d < 0 {
		panic(fmt.Errorf("%w: sleep %d", types.ErrClockBackwards, d))
	}

	s.mu.Lock()
	s.clock += int64(d)
	s.mu.Unlock()
}

// Stop makes a running Start or AdvanceTo return after the current action.
func (s *VirtualTimeScheduler) Stop() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

func (s *VirtualTimeScheduler) enter() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		panic(fmt.Errorf("%w: virtual time scheduler", types.ErrSchedulerRunning))
	}
	s.running = true
}

func (s *VirtualTimeScheduler) leave() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// next dequeues the next live item due at or before limit (any tick when
// limit is nil) and moves the clock to it. Disposed items are skipped.
func (s *VirtualTimeScheduler) next(limit *int64) (*virtualItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.running {
		item, ok := s.pending.Peek()
		if !ok || (limit != nil && item.due > *limit) {
			return nil, false
		}
		s.pending.Dequeue()

		if item.IsDisposed() {
			continue
		}
		if item.due > s.clock {
			s.clock = item.due
		}

		return item, true
	}

	return nil, false
}
