// Package lock provides the mutual-exclusion primitives used by disposables
// and operators.
//
// Two primitives are provided:
//   - SpinLock: short critical sections holding O(1) bookkeeping only. It must
//     never wrap user callbacks.
//   - AsyncLock: a gate serializing queued actions. The goroutine that enters
//     an idle gate drains every action queued while it was busy, in FIFO order,
//     so reentrant submissions never recurse and never deadlock.
//
// Neither primitive is reentrant.
package lock
