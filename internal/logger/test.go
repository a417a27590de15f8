package logger

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/arloliu/rx/types"
)

// Entry is one message captured by TestLogger.
type Entry struct {
	Level   string
	Message string
	Fields  []any
}

// TestLogger implements types.Logger on top of testing.TB.
//
// Messages are written with t.Logf so they show up in verbose test output,
// and are also captured so that tests can assert on what the library logged.
// Safe for concurrent use; schedulers log from their own goroutines.
type TestLogger struct {
	t       testing.TB
	mu      sync.Mutex
	entries []Entry
}

// Compile-time assertion that TestLogger implements Logger.
var _ types.Logger = (*TestLogger)(nil)

// NewTest creates a new test logger that writes to t.
//
// Parameters:
//   - t: The test or benchmark to write logs to
//
// Returns:
//   - *TestLogger: Logger that records every message
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    log := logger.NewTest(t)
//	    s := scheduler.NewSerial(scheduler.WithLogger(log))
//	    ...
//	    require.Len(t, log.Entries("ERROR"), 1)
//	}
func NewTest(t testing.TB) *TestLogger {
	return &TestLogger{t: t}
}

// Debug logs a debug-level message with optional key-value pairs.
func (l *TestLogger) Debug(msg string, keysAndValues ...any) {
	l.record("DEBUG", msg, keysAndValues)
}

// Info logs an info-level message with optional key-value pairs.
func (l *TestLogger) Info(msg string, keysAndValues ...any) {
	l.record("INFO", msg, keysAndValues)
}

// Warn logs a warning-level message with optional key-value pairs.
func (l *TestLogger) Warn(msg string, keysAndValues ...any) {
	l.record("WARN", msg, keysAndValues)
}

// Error logs an error-level message with optional key-value pairs.
func (l *TestLogger) Error(msg string, keysAndValues ...any) {
	l.record("ERROR", msg, keysAndValues)
}

// Fatal logs a fatal-level message and fails the test.
func (l *TestLogger) Fatal(msg string, keysAndValues ...any) {
	l.record("FATAL", msg, keysAndValues)
	l.t.Fatalf("FATAL: %s %s", msg, formatKeyValues(keysAndValues))
}

// Entries returns the captured messages, optionally filtered by level.
//
// Parameters:
//   - levels: Levels to keep ("DEBUG", "INFO", ...); all entries when empty
//
// Returns:
//   - []Entry: Copy of the matching entries in logging order
func (l *TestLogger) Entries(levels ...string) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if len(levels) == 0 || containsLevel(levels, e.Level) {
			out = append(out, e)
		}
	}

	return out
}

func (l *TestLogger) record(level, msg string, keysAndValues []any) {
	l.mu.Lock()
	l.entries = append(l.entries, Entry{Level: level, Message: msg, Fields: keysAndValues})
	l.mu.Unlock()

	if level != "FATAL" {
		l.t.Logf("%s: %s %s", level, msg, formatKeyValues(keysAndValues))
	}
}

func containsLevel(levels []string, level string) bool {
	for _, l := range levels {
		if l == level {
			return true
		}
	}

	return false
}

// formatKeyValues formats key-value pairs for logging.
func formatKeyValues(keysAndValues []any) string {
	if len(keysAndValues) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&sb, "%v=%v ", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&sb, "%v=<missing> ", keysAndValues[i])
		}
	}

	return strings.TrimSuffix(sb.String(), " ")
}
