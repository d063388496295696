package test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tripweaver/logsense/pkg/analyzer"
	"github.com/tripweaver/logsense/pkg/config"
	"github.com/tripweaver/logsense/pkg/logging"
	"github.com/tripweaver/logsense/pkg/output"
	"github.com/tripweaver/logsense/pkg/retention"
)

// TestE2E_WriteAnalyzeReport runs the full pipeline in process: the log
// writers produce the structured files, the analyzer reads them back, and
// the exporter writes a report.
func TestE2E_WriteAnalyzeReport(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogDir = dir
	ctx := context.Background()

	// Produce application logs.
	appLog, err := logging.New(cfg.SystemLogPath(), "travel_planner")
	if err != nil {
		t.Fatalf("Failed to create app logger: %v", err)
	}
	appLog.Info("service started", nil)
	appLog.Error("ValueError: invalid destination", nil)

	work := logging.Instrument(appLog, "plan_trip", func(ctx context.Context) error {
		return nil
	})
	if err := work(ctx); err != nil {
		t.Fatalf("Instrumented work failed: %v", err)
	}
	if err := appLog.Close(); err != nil {
		t.Fatal(err)
	}

	// Produce query lifecycle events.
	queryLog, err := logging.NewQueryLogger(cfg.QueryLogPath())
	if err != nil {
		t.Fatalf("Failed to create query logger: %v", err)
	}
	queryLog.LogQuery("Plan a 3 day trip to Paris", "user-1", nil)
	queryLog.LogResponse("Plan a 3 day trip to Paris", "itinerary", 1.2, "user-1", nil)
	queryLog.LogQuery("Plan a 5 day trip to Paris", "user-2", nil)
	queryLog.LogError("Plan a 5 day trip to Paris", "provider timeout", "user-2", nil)
	if err := queryLog.Close(); err != nil {
		t.Fatal(err)
	}

	// Analyze what was written.
	a := analyzer.NewAnalyzer(cfg)

	health, err := a.SystemHealth(ctx)
	if err != nil {
		t.Fatalf("SystemHealth failed: %v", err)
	}
	if health.LastHourSummary.Queries.TotalQueries != 2 {
		t.Errorf("TotalQueries = %d, want 2", health.LastHourSummary.Queries.TotalQueries)
	}
	if health.LastHourSummary.Queries.SuccessRate != 50 {
		t.Errorf("SuccessRate = %v, want 50", health.LastHourSummary.Queries.SuccessRate)
	}
	if health.Status == "" {
		t.Error("Status is empty")
	}

	queries, err := a.AnalyzeQueryPatterns(ctx, 24)
	if err != nil {
		t.Fatalf("AnalyzeQueryPatterns failed: %v", err)
	}
	if len(queries.PopularQueries) != 1 {
		t.Fatalf("patterns = %v, want the two queries to collapse into one", queries.PopularQueries)
	}
	if queries.PopularQueries[0].Pattern != "plan a X day trip to paris" {
		t.Errorf("pattern = %q", queries.PopularQueries[0].Pattern)
	}

	errPatterns, err := a.AnalyzeErrorPatterns(ctx, 24)
	if err != nil {
		t.Fatalf("AnalyzeErrorPatterns failed: %v", err)
	}
	// The direct Error call plus the failed query from the query log land in
	// separate files; only the system log feeds error analysis.
	if errPatterns.Summary.TotalErrors != 1 {
		t.Errorf("TotalErrors = %d, want 1", errPatterns.Summary.TotalErrors)
	}
	if errPatterns.Summary.ErrorTypes[0].Label != "ValueError" {
		t.Errorf("top error type = %+v", errPatterns.Summary.ErrorTypes[0])
	}

	// Export the report and read it back.
	report, err := output.BuildReport(ctx, a)
	if err != nil {
		t.Fatalf("BuildReport failed: %v", err)
	}
	path, err := output.NewExporter(cfg.LogDir).Export(report, "")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Exported report is not valid JSON: %v", err)
	}
	for _, key := range []string{"generated_at", "system_health", "query_patterns_24h", "error_patterns_24h", "log_files"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("Report missing key %q", key)
		}
	}
}

// TestE2E_RetentionLeavesFreshLogsAlone ages one log past the threshold and
// verifies cleanup removes only that file.
func TestE2E_RetentionLeavesFreshLogsAlone(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogDir = dir

	queryLog, err := logging.NewQueryLogger(cfg.QueryLogPath())
	if err != nil {
		t.Fatal(err)
	}
	queryLog.LogQuery("weekend in Rome", "", nil)
	queryLog.Close()

	stale := filepath.Join(dir, "structured.log.3")
	if err := os.WriteFile(stale, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	mtime := time.Now().AddDate(0, 0, -(cfg.Retention.Days + 5))
	if err := os.Chtimes(stale, mtime, mtime); err != nil {
		t.Fatal(err)
	}

	deleted, err := retention.Cleanup(dir, cfg.Retention.Days)
	if err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}
	if len(deleted) != 1 || deleted[0] != stale {
		t.Errorf("deleted = %v, want only %q", deleted, stale)
	}

	// The fresh query log must still be analyzable.
	a := analyzer.NewAnalyzer(cfg)
	analysis, err := a.AnalyzeQueryPatterns(context.Background(), 1)
	if err != nil {
		t.Fatalf("Analysis after cleanup failed: %v", err)
	}
	if analysis.Summary.TotalQueries != 1 {
		t.Errorf("TotalQueries = %d, want 1", analysis.Summary.TotalQueries)
	}
}

// TestE2E_MissingQueryLogIsDistinguishable checks that a missing query log
// surfaces the sentinel while the health verdict still succeeds.
func TestE2E_MissingQueryLogIsDistinguishable(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogDir = dir
	ctx := context.Background()

	appLog, err := logging.New(cfg.SystemLogPath(), "travel_planner")
	if err != nil {
		t.Fatal(err)
	}
	appLog.Info("service started", nil)
	appLog.Close()

	a := analyzer.NewAnalyzer(cfg)

	if _, err := a.AnalyzeQueryPatterns(ctx, 1); !errors.Is(err, analyzer.ErrQueryLogNotFound) {
		t.Fatalf("err = %v, want ErrQueryLogNotFound", err)
	}

	health, err := a.SystemHealth(ctx)
	if err != nil {
		t.Fatalf("SystemHealth must tolerate the missing query log: %v", err)
	}
	if health.LastHourSummary.Queries.TotalQueries != 0 {
		t.Errorf("TotalQueries = %d, want 0", health.LastHourSummary.Queries.TotalQueries)
	}
}
