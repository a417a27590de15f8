package disposable

import (
	"sync/atomic"

	"github.com/arloliu/rx/types"
)

// BinaryDisposable disposes a fixed pair of disposables together.
type BinaryDisposable struct {
	disposed atomic.Bool
	first    types.Disposable
	second   types.Disposable
}

var _ types.Cancelable = (*BinaryDisposable)(nil)

// NewBinary creates a disposable releasing first then second.
func NewBinary(first, second types.Disposable) *BinaryDisposable {
	return &BinaryDisposable{first: first, second: second}
}

// Dispose disposes both members once.
func (b *BinaryDisposable) Dispose() {
	if !b.disposed.CompareAndSwap(false, true) {
		return
	}
	if b.first != nil {
		b.first.Dispose()
	}
	if b.second != nil {
		b.second.Dispose()
	}
}

// IsDisposed reports whether Dispose has been called.
func (b *BinaryDisposable) IsDisposed() bool {
	return b.disposed.Load()
}
