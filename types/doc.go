// Package types provides core type definitions and interfaces for the rx library.
//
// This package contains shared types that are used across multiple packages in the
// rx library. By keeping these types in a separate package, we avoid import cycles
// between the root rx package, the disposable and scheduler packages, and the
// internal implementations.
//
// Key types:
//   - Event: Tagged union of Next, Error and Completed
//   - Observer: Consumer capability invoked once per event
//   - Disposable: Idempotent resource release handle
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
//   - Hooks: Global callbacks for unhandled errors and dropped events
package types
