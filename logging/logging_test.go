package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewConnectionIDIsUniqueAndNonEmpty(t *testing.T) {
	a := NewConnectionID()
	b := NewConnectionID()
	if a == "" || b == "" {
		t.Fatalf("NewConnectionID() returned empty string")
	}
	if a == b {
		t.Fatalf("NewConnectionID() returned the same ID twice: %q", a)
	}
}

func TestStdLoggerEncodesEntryAsJSONLine(t *testing.T) {
	var buf bytes.Buffer
	l := &StdLogger{Output: &buf}
	l.Log(Entry{ConnectionID: "conn-1", Method: "GET", Path: "/x", Status: 200})

	var got Entry
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}
	if got.ConnectionID != "conn-1" || got.Method != "GET" || got.Path != "/x" || got.Status != 200 {
		t.Fatalf("decoded entry = %+v, want matching fields", got)
	}
	if got.Time == "" {
		t.Fatalf("Log() did not stamp Time when unset")
	}
}

func TestStdLoggerPreservesExplicitTime(t *testing.T) {
	var buf bytes.Buffer
	l := &StdLogger{Output: &buf}
	l.Log(Entry{Time: "2020-01-01T00:00:00Z", ConnectionID: "c"})

	var got Entry
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Time != "2020-01-01T00:00:00Z" {
		t.Fatalf("Time = %q, want explicit value preserved", got.Time)
	}
}

func TestStdLoggerOmitsEmptyOptionalFields(t *testing.T) {
	var buf bytes.Buffer
	l := &StdLogger{Output: &buf}
	l.Log(Entry{ConnectionID: "c"})
	out := buf.String()
	for _, field := range []string{`"method"`, `"path"`, `"status"`, `"duration_ms"`, `"error"`, `"message"`} {
		if strings.Contains(out, field) {
			t.Errorf("output contains omitempty field %s when unset: %q", field, out)
		}
	}
}

func TestNewStdLoggerDefaultsToStdout(t *testing.T) {
	l := NewStdLogger()
	if l.Output == nil {
		t.Fatalf("NewStdLogger().Output is nil")
	}
}
