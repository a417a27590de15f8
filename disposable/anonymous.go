package disposable

import (
	"sync/atomic"

	"github.com/arloliu/rx/types"
)

// Disposable is re-exported for convenience.
type Disposable = types.Disposable

// Cancelable is re-exported for convenience.
type Cancelable = types.Cancelable

// AnonymousDisposable runs a release function at most once.
type AnonymousDisposable struct {
	disposed atomic.Bool
	action   func()
}

var _ types.Cancelable = (*AnonymousDisposable)(nil)

// Create returns a disposable that invokes action on the first Dispose call.
//
// Parameters:
//   - action: Release function, may be nil
//
// Returns:
//   - *AnonymousDisposable: Disposable wrapping action
func Create(action func()) *AnonymousDisposable {
	return &AnonymousDisposable{action: action}
}

// Dispose runs the release function if it has not run yet.
func (d *AnonymousDisposable) Dispose() {
	if !d.disposed.CompareAndSwap(false, true) {
		return
	}
	if action := d.action; action != nil {
		d.action = nil
		action()
	}
}

// IsDisposed reports whether Dispose has been called.
func (d *AnonymousDisposable) IsDisposed() bool {
	return d.disposed.Load()
}

type nopDisposable struct{}

func (nopDisposable) Dispose() {}

var nop types.Disposable = nopDisposable{}

// Nop returns the shared disposable that does nothing.
func Nop() types.Disposable {
	return nop
}

// BooleanDisposable only records whether it was disposed.
type BooleanDisposable struct {
	disposed atomic.Bool
}

var _ types.Cancelable = (*BooleanDisposable)(nil)

// NewBoolean creates an active BooleanDisposable.
func NewBoolean() *BooleanDisposable {
	return &BooleanDisposable{}
}

// Dispose marks the disposable as disposed.
func (d *BooleanDisposable) Dispose() {
	d.disposed.Store(true)
}

// IsDisposed reports whether Dispose has been called.
func (d *BooleanDisposable) IsDisposed() bool {
	return d.disposed.Load()
}
