package logging

import (
	"fmt"
	"strings"
	"sync"
)

// Entry is one message recorded by a CaptureLogger.
type Entry struct {
	Level   string // VERBOSE, INFO, WARN or ERROR
	Message string
}

// CaptureLogger records messages in memory for later inspection.
// Thread-safe for concurrent use.
type CaptureLogger struct {
	entries []Entry
	mu      sync.Mutex
}

// NewCaptureLogger creates an empty CaptureLogger.
func NewCaptureLogger() *CaptureLogger {
	return &CaptureLogger{}
}

func (l *CaptureLogger) Verbose(format string, args ...interface{}) { l.add("VERBOSE", format, args) }
func (l *CaptureLogger) Info(format string, args ...interface{})    { l.add("INFO", format, args) }
func (l *CaptureLogger) Warn(format string, args ...interface{})    { l.add("WARN", format, args) }
func (l *CaptureLogger) Error(format string, args ...interface{})   { l.add("ERROR", format, args) }

func (l *CaptureLogger) add(level, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{Level: level, Message: msg})
}

// Entries returns a copy of all recorded entries.
func (l *CaptureLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Messages returns the messages recorded at the given level.
func (l *CaptureLogger) Messages(level string) []string {
	var out []string
	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Contains reports whether any message at level contains substr.
func (l *CaptureLogger) Contains(level, substr string) bool {
	for _, m := range l.Messages(level) {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}
