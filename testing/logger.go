package testing

import (
	"testing"

	"github.com/arloliu/rx/internal/logger"
	"github.com/arloliu/rx/types"
)

// NewTestLogger creates a new logger instance that writes to the testing.TB logger.
// This is useful for seeing scheduler and stream diagnostics during test runs.
func NewTestLogger(t testing.TB) types.Logger {
	return logger.NewTest(t)
}
