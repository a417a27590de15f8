package disposable

import (
	"sync"

	"github.com/arloliu/rx/types"
)

// SerialDisposable holds at most one current disposable.
//
// Assigning a new disposable disposes the previous one. Once the serial
// disposable itself is disposed, every later assignment is disposed
// immediately instead of being stored.
type SerialDisposable struct {
	mu       sync.Mutex
	current  types.Disposable
	disposed bool
}

var _ types.Cancelable = (*SerialDisposable)(nil)

// NewSerial creates an empty SerialDisposable.
func NewSerial() *SerialDisposable {
	return &SerialDisposable{}
}

// Set replaces the current disposable.
//
// Parameters:
//   - d: New current disposable
func (s *SerialDisposable) Set(d types.Disposable) {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		d.Dispose()

		return
	}
	prev := s.current
	s.current = d
	s.mu.Unlock()

	if prev != nil {
		prev.Dispose()
	}
}

// Current returns the current disposable, or nil.
func (s *SerialDisposable) Current() types.Disposable {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// IsDisposed reports whether Dispose has been called.
func (s *SerialDisposable) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.disposed
}

// Dispose disposes the current disposable and rejects further assignments.
func (s *SerialDisposable) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	current := s.current
	s.current = nil
	s.mu.Unlock()

	if current != nil {
		current.Dispose()
	}
}
