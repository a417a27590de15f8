// Package testing provides test utilities for code built on rx.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: Logger writing to the test log
//   - Configure: Installs a test runtime and restores the default on cleanup
//   - RequireNoLeaks: Fails the test if subscriptions outlive it
//
// Example usage:
//
//	import (
//	    "testing"
//	    rxtest "github.com/arloliu/rx/testing"
//	)
//
//	func TestPipeline(t *testing.T) {
//	    rxtest.Configure(t)
//	    rxtest.RequireNoLeaks(t, time.Second)
//	    // build and run pipelines
//	}
package testing
