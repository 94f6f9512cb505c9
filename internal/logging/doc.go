// Package logging provides concrete implementations of the labschema.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed lines to stderr (or any writer)
//   - CaptureLogger: Records messages in memory (useful for testing)
//   - NullLogger: Discards all messages
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
