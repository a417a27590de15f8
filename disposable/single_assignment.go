package disposable

import (
	"fmt"
	"sync/atomic"

	"github.com/arloliu/rx/types"
)

const (
	singleDisposed uint32 = 1 << iota
	singleAssigned
)

// SingleAssignmentDisposable accepts its underlying disposable exactly once.
//
// A second Set is a programmer error and panics with types.ErrAlreadyAssigned.
// Set after Dispose disposes the argument immediately.
type SingleAssignmentDisposable struct {
	state      atomic.Uint32
	disposable types.Disposable
}

var _ types.Cancelable = (*SingleAssignmentDisposable)(nil)

// NewSingleAssignment creates an unassigned SingleAssignmentDisposable.
func NewSingleAssignment() *SingleAssignmentDisposable {
	return &SingleAssignmentDisposable{}
}

// Set assigns the underlying disposable.
//
// Parameters:
//   - d: Underlying disposable
func (s *SingleAssignmentDisposable) Set(d types.Disposable) {
	s.disposable = d
	prev := s.state.Or(singleAssigned)

	if prev&singleAssigned != 0 {
		panic(fmt.Errorf("%w: single assignment disposable", types.ErrAlreadyAssigned))
	}

	if prev&singleDisposed != 0 {
		d.Dispose()
		s.disposable = nil
	}
}

// IsDisposed reports whether Dispose has been called.
func (s *SingleAssignmentDisposable) IsDisposed() bool {
	return s.state.Load()&singleDisposed != 0
}

// Dispose disposes the underlying disposable if it was assigned.
func (s *SingleAssignmentDisposable) Dispose() {
	prev := s.state.Or(singleDisposed)
	if prev&singleDisposed != 0 {
		return
	}

	if prev&singleAssigned != 0 {
		d := s.disposable
		s.disposable = nil
		if d != nil {
			d.Dispose()
		}
	}
}
