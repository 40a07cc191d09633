// Package testutil provides utilities for testing legacychain components.
//
// Key components:
//   - MockStore: in-memory will store that records every call and can be
//     told to fail, for asserting what the registry reads and writes
//   - RecordingHook: execution hook that captures invocations
package testutil
