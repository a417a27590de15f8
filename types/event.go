package types

import "fmt"

// EventKind identifies which variant of Event is populated.
type EventKind int

const (
	// KindNext carries a sequence element in Event.Value.
	KindNext EventKind = iota

	// KindError terminates the sequence with Event.Err.
	KindError

	// KindCompleted terminates the sequence successfully.
	KindCompleted
)

// String returns the string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case KindNext:
		return "Next"
	case KindError:
		return "Error"
	case KindCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Event is a single notification delivered to an Observer.
//
// A sequence delivers zero or more Next events followed by at most one
// terminal event (Error or Completed):
//
//	Next* (Error | Completed)?
//
// No event may follow a terminal event.
type Event[T any] struct {
	Kind  EventKind
	Value T
	Err   error
}

// IsStopEvent reports whether the event terminates the sequence.
func (e Event[T]) IsStopEvent() bool {
	return e.Kind == KindError || e.Kind == KindCompleted
}

// String returns a human readable representation used by diagnostics.
func (e Event[T]) String() string {
	switch e.Kind {
	case KindNext:
		return fmt.Sprintf("Next(%v)", e.Value)
	case KindError:
		return fmt.Sprintf("Error(%v)", e.Err)
	case KindCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// NextEvent creates a Next event carrying value.
func NextEvent[T any](value T) Event[T] {
	return Event[T]{Kind: KindNext, Value: value}
}

// ErrorEvent creates a terminal Error event.
func ErrorEvent[T any](err error) Event[T] {
	return Event[T]{Kind: KindError, Err: err}
}

// CompletedEvent creates a terminal Completed event.
func CompletedEvent[T any]() Event[T] {
	return Event[T]{Kind: KindCompleted}
}
