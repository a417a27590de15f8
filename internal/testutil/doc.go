// Package testutil provides observers and sources for testing streams
// against a virtual clock.
//
// The types here only depend on the types and scheduler packages; the
// sources satisfy rx.Observable structurally.
package testutil
