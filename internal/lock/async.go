package lock

import (
	"sync"

	"github.com/arloliu/rx/internal/queue"
)

// AsyncLock serializes actions without blocking callers.
//
// Wait runs the action immediately when the gate is idle. When the gate is
// busy, on this or another goroutine, the action is queued and the goroutine
// currently inside the gate runs it after the in-flight action returns.
// Callers therefore never wait for another goroutine's progress.
type AsyncLock struct {
	mu        sync.Mutex
	queue     *queue.Queue[func()]
	executing bool
	disposed  bool
}

// NewAsyncLock creates an idle gate.
func NewAsyncLock() *AsyncLock {
	return &AsyncLock{queue: queue.New[func()]()}
}

// Wait runs or enqueues action.
//
// Actions submitted after Dispose are dropped.
//
// Parameters:
//   - action: Work to serialize through the gate
func (l *AsyncLock) Wait(action func()) {
	l.mu.Lock()
	if l.disposed {
		l.mu.Unlock()
		return
	}
	if l.executing {
		l.queue.Enqueue(action)
		l.mu.Unlock()

		return
	}
	l.executing = true
	l.mu.Unlock()

	for {
		l.run(action)

		l.mu.Lock()
		next, ok := l.queue.Dequeue()
		if !ok || l.disposed {
			l.executing = false
			l.mu.Unlock()

			return
		}
		l.mu.Unlock()

		action = next
	}
}

// run executes one action and leaves the gate usable if it panics.
func (l *AsyncLock) run(action func()) {
	defer func() {
		if r := recover(); r != nil {
			l.mu.Lock()
			l.executing = false
			l.queue.Clear()
			l.mu.Unlock()
			panic(r)
		}
	}()

	action()
}

// Dispose drops every pending action and rejects future ones.
func (l *AsyncLock) Dispose() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.disposed = true
	l.queue.Clear()
}

// IsDisposed reports whether Dispose has been called.
func (l *AsyncLock) IsDisposed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.disposed
}
