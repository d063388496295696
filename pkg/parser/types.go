// Package parser provides reading and parsing of structured NDJSON log files.
package parser

import (
	"encoding/json"
	"fmt"
	"time"
)

// Record represents a single parsed structured log entry.
// A Record is immutable once parsed; it is only filtered, aggregated, or discarded.
type Record struct {
	// Timestamp is the parsed event time. Always valid for a returned Record.
	Timestamp time.Time `json:"timestamp"`

	// Level is the log level (DEBUG, INFO, WARNING, ERROR, CRITICAL).
	Level string `json:"level"`

	// Logger is the name of the logger that emitted the record.
	Logger string `json:"logger"`

	// Message is the log message text.
	Message string `json:"message"`

	// Module is the source module the record originated from.
	Module string `json:"module"`

	// Function is the source function the record originated from.
	Function string `json:"function"`

	// Line is the source line number.
	Line int `json:"line"`

	// ProcessID is the emitting process id.
	ProcessID int `json:"process_id"`

	// ThreadID is the emitting thread id, when the writer provides one.
	ThreadID int64 `json:"thread_id,omitempty"`

	// Exception holds formatted exception text, if any.
	Exception string `json:"exception,omitempty"`

	// Extra is an open mapping carrying domain fields such as type,
	// query, response, processing_time, user_id, and metadata.
	Extra map[string]any `json:"extra,omitempty"`
}

// rawRecord mirrors Record with the timestamp left as a string so that a
// single line can be rejected on timestamp problems without partial results.
type rawRecord struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Logger    string         `json:"logger"`
	Message   string         `json:"message"`
	Module    string         `json:"module"`
	Function  string         `json:"function"`
	Line      int            `json:"line"`
	ProcessID int            `json:"process_id"`
	ThreadID  int64          `json:"thread_id"`
	Exception string         `json:"exception"`
	Extra     map[string]any `json:"extra"`
}

// ParseLine parses one NDJSON log line into a Record.
// Returns an error if the line is not valid JSON, lacks a timestamp field,
// or carries a timestamp that cannot be parsed. A failed parse never
// produces a partially populated Record.
func ParseLine(line []byte) (*Record, error) {
	var raw rawRecord
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, fmt.Errorf("decoding log line: %w", err)
	}

	if raw.Timestamp == "" {
		return nil, fmt.Errorf("log line has no timestamp field")
	}

	ts, err := ParseTimestamp(raw.Timestamp)
	if err != nil {
		return nil, err
	}

	return &Record{
		Timestamp: ts,
		Level:     raw.Level,
		Logger:    raw.Logger,
		Message:   raw.Message,
		Module:    raw.Module,
		Function:  raw.Function,
		Line:      raw.Line,
		ProcessID: raw.ProcessID,
		ThreadID:  raw.ThreadID,
		Exception: raw.Exception,
		Extra:     raw.Extra,
	}, nil
}

// ExtraString returns a string field from Extra, or "" when absent or not a string.
func (r *Record) ExtraString(key string) string {
	if r.Extra == nil {
		return ""
	}
	s, _ := r.Extra[key].(string)
	return s
}

// ExtraFloat returns a numeric field from Extra.
// The second return is false when the field is absent or not numeric.
func (r *Record) ExtraFloat(key string) (float64, bool) {
	if r.Extra == nil {
		return 0, false
	}
	switch v := r.Extra[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
