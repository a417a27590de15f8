package rx

import (
	"sync"

	"github.com/arloliu/rx/disposable"
	"github.com/arloliu/rx/internal/queue"
	"github.com/arloliu/rx/scheduler"
)

// ObserveOn delivers the events of source on s.
//
// Events are queued and drained by one scheduled action at a time, so the
// downstream observer never sees overlapping calls even on a concurrent
// scheduler.
func ObserveOn[T any](source Observable[T], s scheduler.Immediate) Observable[T] {
	return newProducer("observe_on", func(observer Observer[T], cancel Cancelable) (Disposable, Disposable) {
		sk := &observeOnSink[T]{
			scheduler: s,
			queue:     queue.New[Event[T]](),
		}
		sk.init(observer, cancel)

		return sk, source.Subscribe(sk)
	})
}

type observeOnSink[T any] struct {
	sink[T]
	scheduler scheduler.Immediate

	mu       sync.Mutex
	queue    *queue.Queue[Event[T]]
	draining bool
}

func (s *observeOnSink[T]) On(e Event[T]) {
	s.mu.Lock()
	s.queue.Enqueue(e)
	start := !s.draining
	s.draining = true
	s.mu.Unlock()

	// A pending drain is not cancelled on dispose; it finds the sink
	// disposed and exits.
	if start {
		s.scheduler.Schedule(s.drain)
	}
}

func (s *observeOnSink[T]) drain() Disposable {
	for {
		s.mu.Lock()
		e, ok := s.queue.Dequeue()
		if !ok || s.isDisposed() {
			s.queue.Clear()
			s.draining = false
			s.mu.Unlock()

			return nil
		}
		s.mu.Unlock()

		s.forwardOn(e)
		if e.IsStopEvent() {
			s.dispose()
		}
	}
}

// SubscribeOn performs the subscription to source, and its disposal, on s.
func SubscribeOn[T any](source Observable[T], s scheduler.Immediate) Observable[T] {
	return newProducer("subscribe_on", func(observer Observer[T], cancel Cancelable) (Disposable, Disposable) {
		sk := &anonymousSink[T]{}
		sk.init(observer, cancel)

		slot := disposable.NewSerial()
		scheduled := disposable.NewSingleAssignment()
		slot.Set(scheduled)

		scheduled.Set(s.Schedule(func() Disposable {
			inner := source.Subscribe(sk)
			slot.Set(disposable.Create(func() {
				s.Schedule(func() Disposable {
					inner.Dispose()
					return nil
				})
			}))

			return nil
		}))

		return sk, slot
	})
}
