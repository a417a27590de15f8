package lock

import (
	"runtime"
	"sync/atomic"
)

// spinYieldAfter is the number of failed acquisitions before yielding the processor.
const spinYieldAfter = 16

// SpinLock is a non-reentrant test-and-test-and-set spin lock.
//
// The zero value is an unlocked SpinLock. It implements sync.Locker.
type SpinLock struct {
	state atomic.Int32
}

// Lock acquires the lock, spinning until it is available.
func (l *SpinLock) Lock() {
	spins := 0
	for {
		if l.state.Load() == 0 && l.state.CompareAndSwap(0, 1) {
			return
		}

		spins++
		if spins >= spinYieldAfter {
			spins = 0
			runtime.Gosched()
		}
	}
}

// TryLock acquires the lock if it is free and reports whether it did.
func (l *SpinLock) TryLock() bool {
	return l.state.CompareAndSwap(0, 1)
}

// Unlock releases the lock.
//
// Unlocking an unlocked SpinLock panics.
func (l *SpinLock) Unlock() {
	if !l.state.CompareAndSwap(1, 0) {
		panic("lock: unlock of unlocked SpinLock")
	}
}

// Do runs fn while holding the lock.
func (l *SpinLock) Do(fn func()) {
	l.Lock()
	defer l.Unlock()

	fn()
}
