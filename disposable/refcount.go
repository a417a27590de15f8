package disposable

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/arloliu/rx/types"
)

// RefCountDisposable releases its underlying disposable only after the
// primary Dispose and every retained token has been disposed.
//
// Retain after the underlying disposable was released returns Nop.
// Releasing more tokens than were retained panics with
// types.ErrRefCountUnderflow.
type RefCountDisposable struct {
	mu              sync.Mutex
	underlying      types.Disposable
	count           int
	primaryDisposed bool
}

var _ types.Cancelable = (*RefCountDisposable)(nil)

// NewRefCount wraps the underlying disposable with a reference counter.
//
// Parameters:
//   - underlying: Disposable to release once all holders are done
//
// Returns:
//   - *RefCountDisposable: Counter with zero outstanding tokens
func NewRefCount(underlying types.Disposable) *RefCountDisposable {
	return &RefCountDisposable{underlying: underlying}
}

// Retain returns a token whose Dispose releases one reference.
func (r *RefCountDisposable) Retain() types.Disposable {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.underlying == nil {
		return Nop()
	}
	r.count++

	return &refCountToken{parent: r}
}

// Count returns the number of outstanding retained tokens.
func (r *RefCountDisposable) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.count
}

// IsDisposed reports whether the primary Dispose has been called.
func (r *RefCountDisposable) IsDisposed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.primaryDisposed
}

// Dispose releases the primary reference.
func (r *RefCountDisposable) Dispose() {
	r.mu.Lock()
	if r.underlying == nil || r.primaryDisposed {
		r.mu.Unlock()
		return
	}
	r.primaryDisposed = true
	d := r.takeIfIdle()
	r.mu.Unlock()

	if d != nil {
		d.Dispose()
	}
}

func (r *RefCountDisposable) release() {
	r.mu.Lock()
	if r.underlying == nil {
		r.mu.Unlock()
		return
	}
	if r.count == 0 {
		r.mu.Unlock()
		panic(fmt.Errorf("%w: release without matching retain", types.ErrRefCountUnderflow))
	}
	r.count--
	d := r.takeIfIdle()
	r.mu.Unlock()

	if d != nil {
		d.Dispose()
	}
}

// takeIfIdle detaches the underlying disposable once nothing holds it.
// Must be called with mu held.
func (r *RefCountDisposable) takeIfIdle() types.Disposable {
	if !r.primaryDisposed || r.count != 0 {
		return nil
	}
	d := r.underlying
	r.underlying = nil

	return d
}

type refCountToken struct {
	parent   *RefCountDisposable
	disposed atomic.Bool
}

func (t *refCountToken) Dispose() {
	if t.disposed.CompareAndSwap(false, true) {
		t.parent.release()
	}
}
