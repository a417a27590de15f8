package types

// Hooks defines global callbacks for conditions that cannot be reported
// through a stream.
//
// All hooks are optional and invoked synchronously on the goroutine that
// observed the condition, so they must be fast and must not block. A nil
// field is ignored.
//
// Example:
//
//	rx.Configure(rx.DefaultConfig(), rx.WithHooks(&rx.Hooks{
//	    OnUnhandledError: func(err error) {
//	        errorsTotal.Inc()
//	    },
//	}))
type Hooks struct {
	// OnUnhandledError is called when an Error event reaches a callback
	// subscriber that did not supply an error handler.
	OnUnhandledError func(err error)

	// OnDroppedEvent is called when an event is discarded because it violated
	// the sequence grammar (for example, an event after a terminal event).
	OnDroppedEvent func(operator string, reason string)
}
