// Package output provides report assembly, export, and rendering.
package output

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tripweaver/logsense/pkg/analyzer"
)

// reportWindowHours is the window used for the exported pattern analyses.
const reportWindowHours = 24

// Report is an immutable snapshot of all analyses.
// It is written once to a timestamped file and never updated in place.
type Report struct {
	// GeneratedAt is when the snapshot was taken.
	GeneratedAt time.Time `json:"generated_at"`

	// SystemHealth is the 1-hour health verdict.
	SystemHealth *analyzer.Health `json:"system_health"`

	// QueryPatterns24h is the 24-hour query analysis,
	// null when the query log file is absent.
	QueryPatterns24h *analyzer.QueryAnalysis `json:"query_patterns_24h"`

	// ErrorPatterns24h is the 24-hour error analysis.
	ErrorPatterns24h *analyzer.ErrorAnalysis `json:"error_patterns_24h"`

	// LogFiles maps log file base names to paths.
	LogFiles map[string]string `json:"log_files"`
}

// BuildReport assembles a snapshot from the analyzer's current view.
func BuildReport(ctx context.Context, a *analyzer.Analyzer) (*Report, error) {
	health, err := a.SystemHealth(ctx)
	if err != nil {
		return nil, fmt.Errorf("evaluating system health: %w", err)
	}

	queries, err := a.AnalyzeQueryPatterns(ctx, reportWindowHours)
	if err != nil && !errors.Is(err, analyzer.ErrQueryLogNotFound) {
		return nil, fmt.Errorf("analyzing query patterns: %w", err)
	}

	errPatterns, err := a.AnalyzeErrorPatterns(ctx, reportWindowHours)
	if err != nil {
		return nil, fmt.Errorf("analyzing error patterns: %w", err)
	}

	files, err := a.LogFiles()
	if err != nil {
		return nil, err
	}

	return &Report{
		GeneratedAt:      time.Now(),
		SystemHealth:     health,
		QueryPatterns24h: queries,
		ErrorPatterns24h: errPatterns,
		LogFiles:         files,
	}, nil
}

// Exporter persists analysis reports as JSON files.
type Exporter struct {
	dir string
	now func() time.Time
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithExportClock overrides the clock used for default file names. Used in tests.
func WithExportClock(now func() time.Time) ExporterOption {
	return func(e *Exporter) {
		e.now = now
	}
}

// NewExporter creates an exporter writing into the given directory.
func NewExporter(dir string, opts ...ExporterOption) *Exporter {
	e := &Exporter{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export serializes the report to path, or to a timestamped default file in
// the exporter's directory when path is empty. The target is created or
// overwritten, never appended. Returns the path written.
func (e *Exporter) Export(report *Report, path string) (string, error) {
	if path == "" {
		name := fmt.Sprintf("analysis_report_%s.json", e.now().Format("20060102_150405"))
		path = filepath.Join(e.dir, name)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	return path, nil
}
