package testutil

import (
	"sync"

	"github.com/arthur-debert/legacychain/pkg/types"
)

// HookCall is one captured execution hook invocation
type HookCall struct {
	Owner  types.Identity
	Record types.WillRecord
}

// RecordingHook captures execution hook calls and optionally fails them
type RecordingHook struct {
	mu    sync.Mutex
	calls []HookCall
	err   error
}

// NewRecordingHook returns a hook that succeeds, or fails with err when non-nil
func NewRecordingHook(err error) *RecordingHook {
	return &RecordingHook{err: err}
}

// Hook matches registry.ExecutionHook
func (h *RecordingHook) Hook(owner types.Identity, record types.WillRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.calls = append(h.calls, HookCall{Owner: owner, Record: record.Clone()})
	return h.err
}

// Calls returns the captured invocations
func (h *RecordingHook) Calls() []HookCall {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]HookCall, len(h.calls))
	copy(out, h.calls)
	return out
}
