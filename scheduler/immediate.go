package scheduler

import "github.com/arloliu/rx/types"

// ImmediateScheduler runs every action synchronously on the calling goroutine.
type ImmediateScheduler struct{}

var _ Immediate = ImmediateScheduler{}

// Schedule runs action before returning.
func (ImmediateScheduler) Schedule(action Action) types.Disposable {
	return orNop(action())
}
