package scheduler

import (
	"sync"
	"time"

	"github.com/arloliu/rx/disposable"
	"github.com/arloliu/rx/types"
)

// ScheduleRecursive runs action with state and lets it reschedule itself
// through recurse.
//
// Every pending reschedule is tracked; disposing the returned disposable
// cancels all of them. On the CurrentThread scheduler recursion is drained
// iteratively by the trampoline.
//
// Parameters:
//   - s: Target scheduler
//   - state: Initial state
//   - action: Work to run; call recurse to schedule the next step
//
// Returns:
//   - types.Disposable: Cancels pending recursion
//
// Example:
//
//	scheduler.ScheduleRecursive(scheduler.CurrentThread(), 0, func(i int, recurse func(int)) {
//	    if i < len(items) {
//	        observer.On(rx.Next(items[i]))
//	        recurse(i + 1)
//	    }
//	})
func ScheduleRecursive[S any](s Immediate, state S, action func(state S, recurse func(S))) types.Disposable {
	r := &recursiveScheduler[S]{group: disposable.NewComposite()}
	r.submit = func(step func() types.Disposable, _ time.Duration) types.Disposable {
		return s.Schedule(step)
	}
	r.action = func(state S) {
		action(state, func(next S) { r.schedule(next, 0) })
	}
	r.schedule(state, 0)

	return r.group
}

// ScheduleRecursiveRelative is ScheduleRecursive with a delay on every step.
//
// Parameters:
//   - s: Target scheduler
//   - state: Initial state
//   - due: Delay before the first step
//   - action: Work to run; call recurse with the next state and its delay
//
// Returns:
//   - types.Disposable: Cancels pending recursion
func ScheduleRecursiveRelative[S any](s Scheduler, state S, due time.Duration, action func(state S, recurse func(S, time.Duration))) types.Disposable {
	r := &recursiveScheduler[S]{group: disposable.NewComposite()}
	r.submit = func(step func() types.Disposable, due time.Duration) types.Disposable {
		return s.ScheduleRelative(due, step)
	}
	r.action = func(state S) {
		action(state, r.schedule)
	}
	r.schedule(state, due)

	return r.group
}

type recursiveScheduler[S any] struct {
	mu     sync.Mutex
	group  *disposable.CompositeDisposable
	submit func(step func() types.Disposable, due time.Duration) types.Disposable
	action func(state S)
}

func (r *recursiveScheduler[S]) schedule(state S, due time.Duration) {
	if r.group.IsDisposed() {
		return
	}

	var (
		key     disposable.Key
		isAdded bool
		isDone  bool
	)

	d := r.submit(func() types.Disposable {
		r.mu.Lock()
		if isAdded {
			r.group.Remove(key)
		} else {
			isDone = true
		}
		r.mu.Unlock()

		if !r.group.IsDisposed() {
			r.action(state)
		}

		return nil
	}, due)

	r.mu.Lock()
	if !isDone {
		key, isAdded = r.group.Insert(d)
	}
	r.mu.Unlock()
}
