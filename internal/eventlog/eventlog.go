// Package eventlog appends interface diagnostics to a session log file.
// Logging is best-effort: a logger that fails to open, or whose writes
// fail, degrades to a no-op so the interface is never disrupted.
package eventlog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultPath is the event log location relative to the working directory.
	DefaultPath = "logs/tui_events.log"

	timestampLayout = "2006-01-02T15:04:05Z"
)

// Logger appends timestamped event lines to a file. The zero value and a
// nil *Logger are both safe no-ops.
type Logger struct {
	mu   sync.Mutex
	file *os.File
}

// Open creates (or appends to) the event log at path, creating parent
// directories as needed. On any failure it returns a disabled logger and
// no error; diagnostics must never block the caller.
func Open(path string) *Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &Logger{}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return &Logger{}
	}
	l := &Logger{file: f}
	l.Logf("session started id=%s", uuid.NewString())
	return l
}

// Logf appends a single formatted event line with a UTC timestamp. Write
// errors are swallowed.
func (l *Logger) Logf(format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	ts := time.Now().UTC().Format(timestampLayout)
	fmt.Fprintf(l.file, "%s %s\n", ts, fmt.Sprintf(format, args...))
}

// Close releases the underlying file. Safe on a disabled or nil logger.
func (l *Logger) Close() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return
	}
	ts := time.Now().UTC().Format(timestampLayout)
	fmt.Fprintf(l.file, "%s session ended\n", ts)
	_ = l.file.Close()
	l.file = nil
}
