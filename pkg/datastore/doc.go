// Package datastore provides the durable key-value store behind the will
// registry. Records are keyed by owner identity; a store only gets and sets
// whole records and never interprets them.
//
// Two implementations are provided: an in-memory store for tests and
// embedding, and a file-backed store that keeps one document per owner and
// replaces it atomically on every write.
package datastore
