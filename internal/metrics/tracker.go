package metrics

import (
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"
)

// ResourceTracker counts live subscriptions across the process.
//
// Tracking is off by default; when disabled Acquire and Release are a single
// atomic load. The count is striped (xsync.Counter) so that heavily
// concurrent subscribe/dispose traffic does not contend on one cache line.
type ResourceTracker struct {
	enabled atomic.Bool
	live    *xsync.Counter
}

// NewResourceTracker creates a disabled tracker.
func NewResourceTracker() *ResourceTracker {
	return &ResourceTracker{live: xsync.NewCounter()}
}

// SetEnabled turns tracking on or off. Turning it off resets the count.
func (r *ResourceTracker) SetEnabled(enabled bool) {
	r.enabled.Store(enabled)
	if !enabled {
		r.live.Reset()
	}
}

// Enabled reports whether tracking is on.
func (r *ResourceTracker) Enabled() bool {
	return r.enabled.Load()
}

// Acquire records one live resource and reports whether it was counted.
//
// Callers pass the returned flag to Release so that resources acquired while
// tracking was off are never subtracted.
func (r *ResourceTracker) Acquire() bool {
	if !r.enabled.Load() {
		return false
	}
	r.live.Inc()

	return true
}

// Release forgets one live resource previously counted by Acquire.
func (r *ResourceTracker) Release(counted bool) {
	if counted && r.enabled.Load() {
		r.live.Dec()
	}
}

// Count returns the number of live tracked resources.
func (r *ResourceTracker) Count() int64 {
	return r.live.Value()
}
