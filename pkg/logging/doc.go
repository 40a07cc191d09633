// Package logging wraps zerolog setup for legacychain. Components obtain a
// named logger with GetLogger; the CLI calls SetupLogger once per run.
package logging
