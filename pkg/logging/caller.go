package logging

import (
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

// callerHook attaches module, function, and line fields describing the
// first caller outside this package and zerolog.
type callerHook struct{}

func (callerHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	module, function, line := callerInfo()
	e.Str("module", module).Str("function", function).Int("line", line)
}

func callerInfo() (module, function string, line int) {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		if frame.Function != "" && !internalFrame(frame.Function) {
			return moduleName(frame.File), shortFunc(frame.Function), frame.Line
		}
		if !more {
			return "", "", 0
		}
	}
}

func internalFrame(fn string) bool {
	return strings.Contains(fn, "github.com/rs/zerolog") ||
		strings.Contains(fn, "logsense/pkg/logging")
}

// moduleName is the source file stem, mirroring the upstream log schema.
func moduleName(file string) string {
	return strings.TrimSuffix(filepath.Base(file), ".go")
}

// shortFunc trims a fully qualified function name like
// "github.com/acme/pkg.(*Type).Method" down to "Method".
func shortFunc(fn string) string {
	if idx := strings.LastIndex(fn, "/"); idx >= 0 {
		fn = fn[idx+1:]
	}
	if idx := strings.LastIndex(fn, "."); idx >= 0 {
		fn = fn[idx+1:]
	}
	return fn
}
