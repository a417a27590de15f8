// Package hooks provides the default hook set of the rx runtime.
package hooks

import "github.com/arloliu/rx/types"

// NopHooks implements the runtime hooks with no-op callbacks.
//
// This is the default used when no custom hooks are provided, eliminating
// nil checks on the hot path of event delivery.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(error)          = (*NopHooks)(nil).OnUnhandledError
	_ func(string, string) = (*NopHooks)(nil).OnDroppedEvent
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - *types.Hooks: Hooks with every callback set to a no-op
func NewNop() *types.Hooks {
	h := &NopHooks{}
	return &types.Hooks{
		OnUnhandledError: h.OnUnhandledError,
		OnDroppedEvent:   h.OnDroppedEvent,
	}
}

// Fill returns a copy of h with every nil callback replaced by a no-op.
//
// Parameters:
//   - h: Caller-provided hooks, may be nil
//
// Returns:
//   - *types.Hooks: Hooks safe to invoke without nil checks
func Fill(h *types.Hooks) *types.Hooks {
	filled := NewNop()
	if h == nil {
		return filled
	}
	if h.OnUnhandledError != nil {
		filled.OnUnhandledError = h.OnUnhandledError
	}
	if h.OnDroppedEvent != nil {
		filled.OnDroppedEvent = h.OnDroppedEvent
	}

	return filled
}

// OnUnhandledError is a no-op implementation.
func (h *NopHooks) OnUnhandledError(_ error) {}

// OnDroppedEvent is a no-op implementation.
func (h *NopHooks) OnDroppedEvent(_ /* operator */, _ /* reason */ string) {}
