package types

// Observer consumes the events of a sequence.
//
// Observers are not required to be safe for concurrent use. The subscription
// engine guarantees that a single observer instance never sees overlapping
// calls and never sees an event after a terminal one.
type Observer[T any] interface {
	// On delivers one event to the observer.
	On(event Event[T])
}

// Disposable releases a resource or cancels a subscription.
//
// Dispose must be idempotent and safe to call from any goroutine, including
// concurrently with event delivery. It never fails.
type Disposable interface {
	Dispose()
}

// Cancelable is a Disposable that can report whether it has been disposed.
type Cancelable interface {
	Disposable

	// IsDisposed reports whether Dispose has been called.
	IsDisposed() bool
}
