package rx

import "github.com/arloliu/rx/types"

// Sentinel errors, re-exported from the types package.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrPanic wraps a panic recovered from a user function or observer.
	ErrPanic = types.ErrPanic

	// ErrPendingQueueFull terminates a bounded merge whose pending queue is full.
	ErrPendingQueueFull = types.ErrPendingQueueFull

	// ErrDisposed is delivered to observers subscribing to a disposed subject.
	ErrDisposed = types.ErrDisposed

	// ErrAlreadyAssigned is raised when a single-assignment disposable is assigned twice.
	ErrAlreadyAssigned = types.ErrAlreadyAssigned

	// ErrRefCountUnderflow is raised when a ref-count disposable is released below zero.
	ErrRefCountUnderflow = types.ErrRefCountUnderflow

	// ErrSchedulerRunning is raised when a virtual time scheduler is entered recursively.
	ErrSchedulerRunning = types.ErrSchedulerRunning

	// ErrClockBackwards is raised when a virtual clock is moved to an earlier tick.
	ErrClockBackwards = types.ErrClockBackwards

	// ErrSinkAlreadyBound is raised when a subscription is bound to its sink twice.
	ErrSinkAlreadyBound = types.ErrSinkAlreadyBound
)
