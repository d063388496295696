package analyzer

import (
	"context"
	"time"

	"github.com/tripweaver/logsense/pkg/config"
	"github.com/tripweaver/logsense/pkg/parser"
)

// Analyzer computes windowed statistics from the structured log files.
//
// An Analyzer holds no state between calls: every analysis re-scans the
// relevant file from the beginning. That keeps reads idempotent and safe
// against concurrent appenders at the cost of repeated scans, an explicit
// simplicity tradeoff.
type Analyzer struct {
	cfg *config.Config
	now func() time.Time
}

// Option configures analyzer behavior.
type Option func(*Analyzer)

// WithClock overrides the evaluation-time clock. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

// NewAnalyzer creates an analyzer over the configured log directory.
func NewAnalyzer(cfg *config.Config, opts ...Option) *Analyzer {
	a := &Analyzer{
		cfg: cfg,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// LogFiles returns the available log files keyed by base name.
func (a *Analyzer) LogFiles() (map[string]string, error) {
	return parser.ListLogFiles(a.cfg.LogDir)
}

// ReadRange returns the general structured log records within [start, end].
// A zero start or end leaves that side of the window open.
// A missing log file yields an empty slice, not an error.
func (a *Analyzer) ReadRange(ctx context.Context, start, end time.Time) ([]*parser.Record, error) {
	src := parser.NewFileSource(a.cfg.SystemLogPath(), parser.WithTimeRange(start, end))
	defer src.Close()
	return parser.ReadAll(ctx, src)
}

// window returns the trailing window ending at evaluation time.
func (a *Analyzer) window(hours int) TimeRange {
	end := a.now()
	return TimeRange{
		Start: end.Add(-time.Duration(hours) * time.Hour),
		End:   end,
		Hours: hours,
	}
}
