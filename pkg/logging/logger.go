// Package logging provides the structured log writers that produce the
// NDJSON files the analyzer consumes, plus the tool's own operational
// logging. Writers are explicitly constructed and passed by reference;
// there are no package-level logger singletons.
//
// Rotation is not handled here: writers append only, and rotation is an
// external concern of the deployment.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// configureSchema sets the zerolog field scheme to the on-disk format.
// zerolog field names are process-wide, so this runs once.
var configureSchema = sync.OnceFunc(func() {
	zerolog.TimestampFieldName = "timestamp"
	zerolog.LevelFieldName = "level"
	zerolog.MessageFieldName = "message"
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.LevelFieldMarshalFunc = levelName
})

// levelName maps zerolog levels to the schema's level strings.
func levelName(l zerolog.Level) string {
	switch l {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return "DEBUG"
	case zerolog.InfoLevel:
		return "INFO"
	case zerolog.WarnLevel:
		return "WARNING"
	case zerolog.ErrorLevel:
		return "ERROR"
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return "CRITICAL"
	default:
		return strings.ToUpper(l.String())
	}
}

// Logger appends structured records to a log file in the consumed schema:
// one JSON object per line with timestamp, level, logger, message, caller
// metadata, process_id, and an optional extra mapping.
//
// Construct once at startup and pass by reference to consumers.
type Logger struct {
	name string
	file *os.File
	z    zerolog.Logger
}

// New creates a Logger appending to the file at path.
// The file is created if absent and never truncated.
func New(path, name string) (*Logger, error) {
	configureSchema()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) // #nosec G304
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}

	l := &Logger{name: name, file: f}
	l.z = zerolog.New(f).Hook(callerHook{}).With().Timestamp().Logger()
	return l, nil
}

// Named returns a child logger sharing the same file under another name.
func (l *Logger) Named(name string) *Logger {
	return &Logger{name: name, file: nil, z: l.z}
}

// Close closes the underlying file. Child loggers share the parent's file
// and close to a no-op.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Debug logs at DEBUG level with optional extra fields.
func (l *Logger) Debug(msg string, extra map[string]any) {
	l.emit(l.z.Debug(), msg, extra)
}

// Info logs at INFO level with optional extra fields.
func (l *Logger) Info(msg string, extra map[string]any) {
	l.emit(l.z.Info(), msg, extra)
}

// Warning logs at WARNING level with optional extra fields.
func (l *Logger) Warning(msg string, extra map[string]any) {
	l.emit(l.z.Warn(), msg, extra)
}

// Error logs at ERROR level with optional extra fields.
func (l *Logger) Error(msg string, extra map[string]any) {
	l.emit(l.z.Error(), msg, extra)
}

// ErrorWithException logs at ERROR level carrying exception text.
func (l *Logger) ErrorWithException(msg string, err error, extra map[string]any) {
	e := l.z.Error()
	if err != nil {
		e = e.Str("exception", err.Error())
	}
	l.emit(e, msg, extra)
}

// Critical logs at CRITICAL level with optional extra fields.
func (l *Logger) Critical(msg string, extra map[string]any) {
	l.emit(l.z.WithLevel(zerolog.FatalLevel), msg, extra)
}

func (l *Logger) emit(e *zerolog.Event, msg string, extra map[string]any) {
	e = e.Str("logger", l.name).Int("process_id", os.Getpid())
	if extra != nil {
		e = e.Interface("extra", extra)
	}
	e.Msg(msg)
}

// NewOperational creates a zerolog logger for the tool's own diagnostics,
// writing to w in json or console format at the given level.
func NewOperational(w io.Writer, level, format string) zerolog.Logger {
	configureSchema()

	lvl := zerolog.InfoLevel
	switch level {
	case "debug":
		lvl = zerolog.DebugLevel
	case "info":
		lvl = zerolog.InfoLevel
	case "warn", "warning":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}

	if format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
