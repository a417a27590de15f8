package rx

import (
	"sync"

	"github.com/arloliu/rx/disposable"
)

// Switch mirrors only the most recent inner sequence emitted by sources.
//
// Each new inner sequence releases the previous one; events that a
// superseded inner sequence still delivers are dropped. The result completes
// once sources has completed and the latest inner sequence has completed.
func Switch[T any](sources Observable[Observable[T]]) Observable[T] {
	return newProducer("switch", func(observer Observer[T], cancel Cancelable) (Disposable, Disposable) {
		s := &switchSink[T]{
			rt:        currentRuntime(),
			innerSlot: disposable.NewSerial(),
			sourceSub: disposable.NewSingleAssignment(),
		}
		s.init(observer, cancel)

		s.sourceSub.Set(sources.Subscribe(ObserverFunc[Observable[T]](s.onOuter)))

		return s, disposable.NewBinary(s.sourceSub, s.innerSlot)
	})
}

// FlatMapLatest maps every element to an inner sequence and switches to it.
func FlatMapLatest[T, R any](source Observable[T], selector func(T) (Observable[R], error)) Observable[R] {
	return Switch(Map(source, selector))
}

type switchSink[T any] struct {
	sink[T]
	rt *runtime

	mu        sync.Mutex
	stopped   bool
	hasLatest bool
	latest    uint64

	innerSlot *disposable.SerialDisposable
	sourceSub *disposable.SingleAssignmentDisposable
}

func (s *switchSink[T]) onOuter(e Event[Observable[T]]) {
	switch e.Kind {
	case KindNext:
		s.mu.Lock()
		s.latest++
		id := s.latest
		s.hasLatest = true
		s.mu.Unlock()

		innerSub := disposable.NewSingleAssignment()
		s.innerSlot.Set(innerSub)
		innerSub.Set(e.Value.Subscribe(&switchInner[T]{parent: s, id: id, sub: innerSub}))

	case KindError:
		s.mu.Lock()
		s.forwardOn(Error[T](e.Err))
		s.mu.Unlock()
		s.dispose()

	case KindCompleted:
		s.mu.Lock()
		s.stopped = true
		if !s.hasLatest {
			s.forwardOn(Completed[T]())
			s.mu.Unlock()
			s.dispose()

			return
		}
		s.mu.Unlock()
		s.sourceSub.Dispose()
	}
}

type switchInner[T any] struct {
	parent *switchSink[T]
	id     uint64
	sub    *disposable.SingleAssignmentDisposable
}

func (o *switchInner[T]) On(e Event[T]) {
	p := o.parent

	p.mu.Lock()
	if o.id != p.latest {
		p.mu.Unlock()
		p.rt.reportDropped("switch", "stale_generation")

		return
	}

	switch e.Kind {
	case KindNext:
		p.forwardOn(e)
		p.mu.Unlock()
	case KindError:
		p.forwardOn(e)
		p.mu.Unlock()
		p.dispose()
	case KindCompleted:
		p.hasLatest = false
		if p.stopped {
			p.forwardOn(e)
			p.mu.Unlock()
			p.dispose()

			return
		}
		p.mu.Unlock()
		o.sub.Dispose()
	}
}
