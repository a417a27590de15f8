// Package scheduler defines where and when the actions of a stream run.
//
// Two contracts are provided. Immediate only accepts work "as soon as
// possible"; Scheduler adds a clock and delayed work. Every Schedule call
// returns a disposable that cancels the action if it has not started yet.
//
// Variants:
//   - ImmediateScheduler: runs the action synchronously on the caller
//   - CurrentThreadScheduler: per-goroutine trampoline, nested work is queued
//     and drained after the outermost action returns
//   - SerialScheduler: never runs two actions at once, FIFO order
//   - ConcurrentScheduler: bounded pool of goroutines, no ordering guarantee
//   - VirtualTimeScheduler: logical clock driven explicitly by tests
//
// ScheduleRecursive and ScheduleRecursiveRelative implement self-rescheduling
// actions whose pending recursion is cancelled by a single Dispose.
package scheduler
