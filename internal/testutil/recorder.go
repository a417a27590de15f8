package testutil

import (
	"sync"
	"time"

	"github.com/arloliu/rx/types"
)

// Recorded is an event stamped with the virtual tick it was observed at.
type Recorded[T any] struct {
	Time  int64
	Event types.Event[T]
}

// OnNext builds a recorded Next event.
func OnNext[T any](t int64, v T) Recorded[T] {
	return Recorded[T]{Time: t, Event: types.NextEvent(v)}
}

// OnError builds a recorded Error event.
func OnError[T any](t int64, err error) Recorded[T] {
	return Recorded[T]{Time: t, Event: types.ErrorEvent[T](err)}
}

// OnCompleted builds a recorded Completed event.
func OnCompleted[T any](t int64) Recorded[T] {
	return Recorded[T]{Time: t, Event: types.CompletedEvent[T]()}
}

// Recorder is an observer that stores every event it receives.
//
// Safe for concurrent use. Events received after a terminal event are kept
// and counted as violations so tests can assert on the grammar.
type Recorder[T any] struct {
	clock func() int64

	mu         sync.Mutex
	events     []Recorded[T]
	terminated bool
	violations int
	done       chan struct{}
}

var _ types.Observer[int] = (*Recorder[int])(nil)

// NewRecorder creates a recorder stamping events with tick 0.
func NewRecorder[T any]() *Recorder[T] {
	return NewRecorderWithClock[T](nil)
}

// NewRecorderWithClock creates a recorder stamping events with clock().
//
// Parameters:
//   - clock: Tick source, typically VirtualTimeScheduler.Clock (nil stamps 0)
//
// Returns:
//   - *Recorder[T]: Empty recorder
func NewRecorderWithClock[T any](clock func() int64) *Recorder[T] {
	return &Recorder[T]{clock: clock, done: make(chan struct{})}
}

// On records e.
func (r *Recorder[T]) On(e types.Event[T]) {
	var at int64
	if r.clock != nil {
		at = r.clock()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.terminated {
		r.violations++
	}
	r.events = append(r.events, Recorded[T]{Time: at, Event: e})
	if e.IsStopEvent() && !r.terminated {
		r.terminated = true
		close(r.done)
	}
}

// Records returns a copy of the recorded events.
func (r *Recorder[T]) Records() []Recorded[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Recorded[T](nil), r.events...)
}

// Events returns the recorded events without timestamps.
func (r *Recorder[T]) Events() []types.Event[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.Event[T], len(r.events))
	for i, rec := range r.events {
		out[i] = rec.Event
	}

	return out
}

// Values returns the values of the recorded Next events.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []T
	for _, rec := range r.events {
		if rec.Event.Kind == types.KindNext {
			out = append(out, rec.Event.Value)
		}
	}

	return out
}

// Completed reports whether a Completed event was recorded.
func (r *Recorder[T]) Completed() bool {
	return r.lastKind() == types.KindCompleted
}

// Err returns the error of the terminal Error event, or nil.
func (r *Recorder[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.events {
		if rec.Event.Kind == types.KindError {
			return rec.Event.Err
		}
	}

	return nil
}

// Terminated reports whether a terminal event was recorded.
func (r *Recorder[T]) Terminated() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.terminated
}

// Violations returns the number of events received after a terminal event.
func (r *Recorder[T]) Violations() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.violations
}

// WaitTerminated blocks until a terminal event arrives or timeout elapses.
func (r *Recorder[T]) WaitTerminated(timeout time.Duration) bool {
	select {
	case <-r.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

func (r *Recorder[T]) lastKind() types.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.events) == 0 {
		return types.KindNext
	}

	return r.events[len(r.events)-1].Event.Kind
}
