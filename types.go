package rx

import "github.com/arloliu/rx/types"

// Re-export types from the types package.
//
// Internal packages depend on types without depending on the root package,
// while users get rx.Event, rx.Observer, rx.Logger and so on.
type (
	Event[T any]     = types.Event[T]
	EventKind        = types.EventKind
	Observer[T any]  = types.Observer[T]
	Disposable       = types.Disposable
	Cancelable       = types.Cancelable
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	Hooks            = types.Hooks
)

// Event kinds.
const (
	KindNext      = types.KindNext
	KindError     = types.KindError
	KindCompleted = types.KindCompleted
)

// Next creates a Next event carrying value.
func Next[T any](value T) Event[T] {
	return types.NextEvent(value)
}

// Error creates a terminal Error event.
func Error[T any](err error) Event[T] {
	return types.ErrorEvent[T](err)
}

// Completed creates a terminal Completed event.
func Completed[T any]() Event[T] {
	return types.CompletedEvent[T]()
}
