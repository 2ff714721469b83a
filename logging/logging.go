// Package logging provides ember's default connection/request diagnostics
// sink: JSON entries over encoding/json and the standard log package,
// matching the donor routing framework's Logger middleware output shape.
package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
)

// Entry is one structured log record. ConnectionID is a v4 UUID minted once
// per accepted connection so every request it carries can be correlated.
type Entry struct {
	Time         string  `json:"time"`
	ConnectionID string  `json:"connection_id"`
	Method       string  `json:"method,omitempty"`
	Path         string  `json:"path,omitempty"`
	Status       int     `json:"status,omitempty"`
	DurationMS   float64 `json:"duration_ms,omitempty"`
	Error        string  `json:"error,omitempty"`
	Message      string  `json:"message,omitempty"`
}

// NewConnectionID mints a fresh correlation ID for an accepted connection.
func NewConnectionID() string {
	return uuid.NewString()
}

// StdLogger writes Entry values as JSON lines to an io.Writer, defaulting to
// os.Stdout, in the same "encode one entry, log.Printf on failure" shape the
// donor's request logger middleware uses.
type StdLogger struct {
	Output io.Writer
}

// NewStdLogger returns a StdLogger writing to os.Stdout.
func NewStdLogger() *StdLogger {
	return &StdLogger{Output: os.Stdout}
}

// Log encodes entry as a JSON line, stamping Time if unset.
func (l *StdLogger) Log(entry Entry) {
	if entry.Time == "" {
		entry.Time = time.Now().Format(time.RFC3339)
	}
	out := l.Output
	if out == nil {
		out = os.Stdout
	}
	enc := json.NewEncoder(out)
	if err := enc.Encode(entry); err != nil {
		log.Printf("ember: failed to write log entry: %v", err)
	}
}
