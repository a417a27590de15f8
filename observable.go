package rx

// Observable is a push-based sequence of events.
//
// Subscribe starts delivering events to observer and returns a Disposable
// that stops delivery and releases every resource of the subscription.
// Every Observable built by this package enforces the event grammar and
// releases its upstream on termination.
type Observable[T any] interface {
	Subscribe(observer Observer[T]) Disposable
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc[T any] func(event Event[T])

// On calls f(event).
func (f ObserverFunc[T]) On(event Event[T]) {
	f(event)
}

// NewObserver builds an observer from per-kind callbacks. Nil callbacks
// ignore their event kind.
//
// Parameters:
//   - onNext: Called for every element
//   - onError: Called for a terminal error
//   - onCompleted: Called on successful completion
//
// Returns:
//   - Observer[T]: Observer dispatching to the callbacks
func NewObserver[T any](onNext func(T), onError func(error), onCompleted func()) Observer[T] {
	return ObserverFunc[T](func(e Event[T]) {
		switch e.Kind {
		case KindNext:
			if onNext != nil {
				onNext(e.Value)
			}
		case KindError:
			if onError != nil {
				onError(e.Err)
			}
		case KindCompleted:
			if onCompleted != nil {
				onCompleted()
			}
		}
	})
}

// Create builds an Observable from a subscribe function.
//
// The observer handed to subscribe is already protected: events after a
// terminal event are dropped, and a terminal event releases the disposable
// returned by subscribe. subscribe may return nil.
//
// Calls to the observer must not overlap. A producer emitting from several
// goroutines has to serialize its calls itself; an event racing a terminal
// event from another goroutine may otherwise still be delivered.
//
// Parameters:
//   - subscribe: Starts the sequence and returns its release handle
//
// Returns:
//   - Observable[T]: Cold observable calling subscribe once per subscriber
//
// Example:
//
//	ticks := rx.Create(func(o rx.Observer[int]) rx.Disposable {
//	    stop := make(chan struct{})
//	    go func() {
//	        for i := 0; ; i++ {
//	            select {
//	            case <-stop:
//	                return
//	            case <-time.After(time.Second):
//	                o.On(rx.Next(i))
//	            }
//	        }
//	    }()
//	    return disposable.Create(func() { close(stop) })
//	})
func Create[T any](subscribe func(observer Observer[T]) Disposable) Observable[T] {
	return newProducer("create", func(observer Observer[T], cancel Cancelable) (Disposable, Disposable) {
		s := &anonymousSink[T]{}
		s.init(observer, cancel)

		return s, orNop(subscribe(s))
	})
}

type anonymousSink[T any] struct {
	sink[T]
}

func (s *anonymousSink[T]) On(e Event[T]) {
	s.forwardOn(e)
	if e.IsStopEvent() {
		s.dispose()
	}
}
