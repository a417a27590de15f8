package rx

// SubscribeFunc subscribes to source with per-kind callbacks.
//
// An Error event with a nil onError is an unhandled error: it is logged
// through the runtime logger, counted, and passed to Hooks.OnUnhandledError.
// It is never silently discarded.
//
// Parameters:
//   - source: Sequence to observe
//   - onNext: Called for every element (may be nil)
//   - onError: Called for a terminal error (may be nil)
//   - onCompleted: Called on successful completion (may be nil)
//
// Returns:
//   - Disposable: Cancels the subscription
//
// Example:
//
//	sub := rx.SubscribeFunc(source,
//	    func(v int) { fmt.Println(v) },
//	    nil, // errors go to the runtime logger and hooks
//	    func() { fmt.Println("done") },
//	)
//	defer sub.Dispose()
func SubscribeFunc[T any](source Observable[T], onNext func(T), onError func(error), onCompleted func()) Disposable {
	if onError == nil {
		onError = currentRuntime().reportUnhandled
	}

	return source.Subscribe(NewObserver(onNext, onError, onCompleted))
}

// SubscribeNext subscribes to the elements of source only. Errors are
// reported as unhandled.
func SubscribeNext[T any](source Observable[T], onNext func(T)) Disposable {
	return SubscribeFunc(source, onNext, nil, nil)
}
