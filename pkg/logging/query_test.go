package logging

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tripweaver/logsense/pkg/analyzer"
	"github.com/tripweaver/logsense/pkg/config"
)

func TestQueryLogger_EventsFeedAnalyzer(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogDir = dir

	ql, err := NewQueryLogger(cfg.QueryLogPath())
	if err != nil {
		t.Fatalf("NewQueryLogger() error = %v", err)
	}
	ql.LogQuery("Plan a 3 day trip to Paris", "user-1", nil)
	ql.LogResponse("Plan a 3 day trip to Paris", "Here is your itinerary", 2.5, "user-1", nil)
	ql.LogError("Plan a trip to Atlantis", "destination not found", "user-2", nil)
	if err := ql.Close(); err != nil {
		t.Fatal(err)
	}

	a := analyzer.NewAnalyzer(cfg)
	analysis, err := a.AnalyzeQueryPatterns(context.Background(), 1)
	if err != nil {
		t.Fatalf("AnalyzeQueryPatterns() error = %v", err)
	}

	s := analysis.Summary
	if s.TotalQueries != 1 || s.SuccessfulResponses != 1 || s.FailedQueries != 1 {
		t.Errorf("summary = %+v", s)
	}
	if analysis.ProcessingTimes.Count != 1 || analysis.ProcessingTimes.Average != 2.5 {
		t.Errorf("processing times = %+v", analysis.ProcessingTimes)
	}
	if len(analysis.PopularQueries) != 1 || analysis.PopularQueries[0].Pattern != "plan a X day trip to paris" {
		t.Errorf("patterns = %v", analysis.PopularQueries)
	}
}

func TestQueryLogger_MessageFormats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries_structured.log")

	ql, err := NewQueryLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	ql.LogQuery("weekend in Rome", "", nil)
	ql.LogResponse("weekend in Rome", "done", 2.5, "", nil)
	ql.LogError("weekend in Rome", "boom", "", nil)
	ql.Close()

	records := readRecords(t, path)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	if records[0].Message != "Query received: weekend in Rome" {
		t.Errorf("received message = %q", records[0].Message)
	}
	if records[1].Message != "Query processed in 2.50s: weekend in Rome" {
		t.Errorf("response message = %q", records[1].Message)
	}
	if records[2].Message != "Query failed: weekend in Rome - Error: boom" {
		t.Errorf("error message = %q", records[2].Message)
	}
	if records[2].Level != "ERROR" {
		t.Errorf("error level = %q", records[2].Level)
	}

	wantTypes := []string{"query_received", "query_response", "query_error"}
	for i, rec := range records {
		if got := rec.ExtraString("type"); got != wantTypes[i] {
			t.Errorf("record %d type = %q, want %q", i, got, wantTypes[i])
		}
	}
}

func TestQueryLogger_TruncatesMessageNotPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries_structured.log")
	long := strings.Repeat("plan a very long trip ", 10) // > 100 chars

	ql, err := NewQueryLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	ql.LogQuery(long, "", nil)
	ql.Close()

	records := readRecords(t, path)
	if !strings.HasSuffix(records[0].Message, "...") {
		t.Errorf("message not truncated: %q", records[0].Message)
	}
	if got := records[0].ExtraString("query"); got != long {
		t.Errorf("extra query truncated: %q", got)
	}
}
