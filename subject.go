package rx

import (
	"sync"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/rx/disposable"
)

// PublishSubject is a hot sequence that multicasts every event it receives
// to the observers subscribed at that moment.
//
// After a terminal event the subject is stopped: further events are ignored
// and late subscribers receive the terminal event immediately. Calls to On
// must not overlap, as for any observer.
type PublishSubject[T any] struct {
	observers *xsync.Map[uint64, Observer[T]]
	nextID    atomic.Uint64

	mu        sync.Mutex
	stopped   bool
	stopEvent Event[T]
	disposed  bool
}

var (
	_ Observable[int] = (*PublishSubject[int])(nil)
	_ Observer[int]   = (*PublishSubject[int])(nil)
)

// NewPublishSubject creates a subject with no observers.
func NewPublishSubject[T any]() *PublishSubject[T] {
	return &PublishSubject[T]{observers: xsync.NewMap[uint64, Observer[T]]()}
}

// On multicasts e to the current observers.
func (p *PublishSubject[T]) On(e Event[T]) {
	p.mu.Lock()
	if p.stopped || p.disposed {
		p.mu.Unlock()
		return
	}
	if e.IsStopEvent() {
		p.stopped = true
		p.stopEvent = e
	}
	p.mu.Unlock()

	if !e.IsStopEvent() {
		p.observers.Range(func(_ uint64, o Observer[T]) bool {
			o.On(e)
			return true
		})

		return
	}

	p.observers.Range(func(id uint64, _ Observer[T]) bool {
		if o, ok := p.observers.LoadAndDelete(id); ok {
			o.On(e)
		}

		return true
	})
}

// Subscribe registers observer for future events.
func (p *PublishSubject[T]) Subscribe(observer Observer[T]) Disposable {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		observer.On(Error[T](ErrDisposed))

		return disposable.Nop()
	}
	if p.stopped {
		e := p.stopEvent
		p.mu.Unlock()
		observer.On(e)

		return disposable.Nop()
	}

	id := p.nextID.Add(1)
	p.observers.Store(id, observer)
	p.mu.Unlock()

	return disposable.Create(func() {
		p.observers.Delete(id)
	})
}

// HasObservers reports whether any observer is subscribed.
func (p *PublishSubject[T]) HasObservers() bool {
	return p.observers.Size() > 0
}

// Dispose drops every observer without notifying them. Later subscribers
// receive ErrDisposed.
func (p *PublishSubject[T]) Dispose() {
	p.mu.Lock()
	p.disposed = true
	p.mu.Unlock()

	p.observers.Clear()
}
