// Package logger holds the loggers rx falls back to: a silent one used when
// nothing is configured, and a capturing one for tests.
package logger

import "github.com/arloliu/rx/types"

// Silent drops every entry. The zero value is ready to use.
//
// The runtime and every scheduler start out with it, so unhandled stream
// errors and recovered action panics are only visible once a real logger is
// installed with rx.WithLogger or scheduler.WithLogger.
type Silent struct{}

var _ types.Logger = Silent{}

// NewNop returns the silent logger.
func NewNop() Silent {
	return Silent{}
}

func (Silent) Debug(string, ...any) {}
func (Silent) Info(string, ...any)  {}
func (Silent) Warn(string, ...any)  {}
func (Silent) Error(string, ...any) {}

// Fatal drops the entry like the other levels and returns; it never ends
// the process.
func (Silent) Fatal(string, ...any) {}
