package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the rx library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// Components wrap them with context using fmt.Errorf("%w: ...", err).

// Configuration errors.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Stream errors delivered as terminal Error events.
var (
	// ErrPanic wraps a panic recovered from a user-supplied function or observer.
	ErrPanic = errors.New("recovered panic")

	// ErrPendingQueueFull terminates a bounded merge whose pending queue exceeded its limit.
	ErrPendingQueueFull = errors.New("pending inner sequence queue is full")

	// ErrDisposed is delivered to observers subscribing to an already disposed subject.
	ErrDisposed = errors.New("object is disposed")
)

// Programmer-contract violations. These are raised as panics.
var (
	// ErrAlreadyAssigned is raised when a single-assignment disposable is assigned twice.
	ErrAlreadyAssigned = errors.New("disposable is already assigned")

	// ErrRefCountUnderflow is raised when a ref-count disposable is released below zero.
	ErrRefCountUnderflow = errors.New("ref-count disposable counter underflow")

	// ErrSchedulerRunning is raised when a virtual time scheduler is entered recursively.
	ErrSchedulerRunning = errors.New("scheduler is already running")

	// ErrClockBackwards is raised when a virtual clock is asked to move into the past.
	ErrClockBackwards = errors.New("virtual clock cannot move backwards")

	// ErrSinkAlreadyBound is raised when a subscription is bound to its sink twice.
	ErrSinkAlreadyBound = errors.New("sink and subscription are already set")
)

// PanicError converts a recovered panic value into an error wrapping ErrPanic.
//
// If the value is already an error, it is wrapped as well so that callers can
// match both ErrPanic and the original error with errors.Is.
//
// Parameters:
//   - r: Value returned by recover()
//
// Returns:
//   - error: Error wrapping ErrPanic
func PanicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrPanic, err)
	}

	return fmt.Errorf("%w: %v", ErrPanic, r)
}
