package rx

import (
	"sync/atomic"

	"github.com/arloliu/rx/disposable"
)

// sink is the per-subscription state shared by every operator: the
// downstream observer and the cancellation handle of the subscription.
//
// Once disposed, forwardOn drops events. Operator sinks embed it and add
// their own state.
type sink[T any] struct {
	observer Observer[T]
	cancel   Cancelable
	disposed atomic.Bool
}

func (s *sink[T]) init(observer Observer[T], cancel Cancelable) {
	s.observer = observer
	s.cancel = cancel
}

func (s *sink[T]) forwardOn(e Event[T]) {
	if s.disposed.Load() {
		return
	}
	s.observer.On(e)
}

func (s *sink[T]) isDisposed() bool {
	return s.disposed.Load()
}

// dispose releases the whole subscription this sink belongs to.
func (s *sink[T]) dispose() {
	s.disposed.Store(true)
	s.cancel.Dispose()
}

// Dispose marks the sink disposed. It is called by the subscription's
// sinkDisposer, which releases the upstream subscription itself.
func (s *sink[T]) Dispose() {
	s.disposed.Store(true)
}

func orNop(d Disposable) Disposable {
	if d == nil {
		return disposable.Nop()
	}

	return d
}
