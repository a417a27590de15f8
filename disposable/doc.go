// Package disposable provides resource-release primitives for subscriptions.
//
// Every type in this package satisfies types.Disposable: Dispose is idempotent,
// safe for concurrent use and never fails. Containers that accept further
// disposables (Composite, Serial, SingleAssignment, Bag) dispose any item
// attached after they themselves were disposed, so "too late" attachments
// never leak.
//
// Available primitives:
//   - Create / Nop: anonymous and no-op disposables
//   - Boolean: a flag that only records disposal
//   - Composite: keyed group, insert/remove from any goroutine
//   - Serial: holds one current disposable, replacing disposes the previous
//   - SingleAssignment: assigned exactly once
//   - RefCount: underlying released after primary dispose and all retains
//   - Binary: fixed pair disposed together
//   - Bag: collects subscriptions for "lives as long as I do" ownership
//
// Example:
//
//	bag := disposable.NewBag()
//	defer bag.Dispose()
//
//	bag.Insert(rx.SubscribeFunc(source, onNext, nil, nil))
package disposable
