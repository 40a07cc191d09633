// Package types defines the core types and interfaces used throughout
// legacychain. This includes the Identity and WillRecord data structures
// as well as the FS interface used by the file-backed store.
package types
