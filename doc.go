// Package rx provides a reactive-stream execution engine: composable,
// push-based sequences of events with explicit resource release and
// pluggable scheduling.
//
// A sequence delivers zero or more Next events followed by at most one
// terminal event (Error or Completed). Subscribing returns a Disposable that
// cancels the subscription and releases every resource it holds.
//
// # Quick Start
//
//	import "github.com/arloliu/rx"
//
//	numbers := rx.Of(1, 1, 2, 2, 2, 3, 1)
//	sub := rx.SubscribeFunc(rx.DistinctUntilChanged(numbers),
//	    func(v int) { fmt.Println(v) }, // 1 2 3 1
//	    func(err error) { log.Println(err) },
//	    func() { fmt.Println("done") },
//	)
//	defer sub.Dispose()
//
// # Guarantees
//
//   - Grammar: every observer sees Next* (Error | Completed)?, even when an
//     operator receives events from several goroutines at once
//   - Release: a terminal event or Dispose releases the whole upstream chain;
//     Dispose is idempotent and safe from any goroutine
//   - Re-entrancy: subscribing from inside a callback never grows the stack
//     without bound; nested work is trampolined on the current goroutine
//
// # Concurrency Operators
//
//   - Merge / MergeLimited: interleave inner sequences, optionally bounding
//     how many run at once (the rest wait in a FIFO queue)
//   - Switch: follow only the latest inner sequence
//   - Concat: run sequences one after another with constant stack depth
//   - DistinctUntilChanged: suppress consecutive duplicates
//
// # Runtime Configuration
//
// Logging, metrics, hooks and resource tracing are process-wide:
//
//	cfg := rx.DefaultConfig()
//	cfg.TraceResources = true
//	if err := rx.Configure(cfg, rx.WithLogger(myLogger)); err != nil {
//	    log.Fatal(err)
//	}
//
// See the scheduler and disposable packages for the building blocks.
package rx
