package scheduler

import (
	"time"

	"github.com/petermattis/goid"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/rx/internal/queue"
	"github.com/arloliu/rx/types"
)

// trampolines holds the pending queue of every goroutine that is currently
// inside a CurrentThreadScheduler action. A queue is only touched by the
// goroutine that owns it.
var trampolines = xsync.NewMap[int64, *queue.Queue[*scheduledItem]]()

// CurrentThreadScheduler is a per-goroutine trampoline.
//
// The outermost Schedule call on a goroutine runs its action immediately and
// then drains every action queued by nested Schedule calls, in FIFO order,
// before returning. Nested calls only enqueue. This turns recursive
// scheduling into iteration and keeps the stack flat.
type CurrentThreadScheduler struct{}

var (
	_ Scheduler = CurrentThreadScheduler{}

	currentThread = CurrentThreadScheduler{}
)

// CurrentThread returns the trampoline scheduler.
func CurrentThread() CurrentThreadScheduler {
	return currentThread
}

// IsScheduleRequired reports whether the calling goroutine is outside any
// trampoline, meaning a Schedule call would run its action right away.
func IsScheduleRequired() bool {
	_, running := trampolines.Load(goid.Get())
	return !running
}

// Now returns the wall clock time.
func (CurrentThreadScheduler) Now() time.Time {
	return time.Now()
}

// Schedule runs action now if the goroutine is not already trampolining,
// otherwise queues it behind the action that is currently running.
func (CurrentThreadScheduler) Schedule(action Action) types.Disposable {
	id := goid.Get()

	if q, running := trampolines.Load(id); running {
		item := newScheduledItem(action)
		q.Enqueue(item)

		return item
	}

	q := queue.New[*scheduledItem]()
	trampolines.Store(id, q)
	defer trampolines.Delete(id)

	d := orNop(action())

	for {
		item, ok := q.Dequeue()
		if !ok {
			break
		}
		item.invoke()
	}

	return d
}

// ScheduleRelative blocks the calling goroutine for due, then schedules action.
func (s CurrentThreadScheduler) ScheduleRelative(due time.Duration, action Action) types.Disposable {
	if due > 0 {
		time.Sleep(due)
	}

	return s.Schedule(action)
}
