package logging

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestInstrument_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structured.log")
	logger, err := New(path, "workflow")
	if err != nil {
		t.Fatal(err)
	}

	called := false
	wrapped := Instrument(logger, "plan_trip", func(ctx context.Context) error {
		called = true
		return nil
	})
	if err := wrapped(context.Background()); err != nil {
		t.Fatalf("wrapped() error = %v", err)
	}
	if !called {
		t.Fatal("unit of work was not invoked")
	}
	logger.Close()

	records := readRecords(t, path)
	if len(records) != 2 {
		t.Fatalf("got %d records, want start and completion", len(records))
	}
	if records[0].Message != "Starting execution of plan_trip" {
		t.Errorf("start message = %q", records[0].Message)
	}
	if !strings.HasPrefix(records[1].Message, "Completed plan_trip in ") {
		t.Errorf("completion message = %q", records[1].Message)
	}
	if records[0].Level != "DEBUG" || records[1].Level != "DEBUG" {
		t.Errorf("levels = %q %q, want DEBUG", records[0].Level, records[1].Level)
	}
}

func TestInstrument_ErrorPassesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structured.log")
	logger, err := New(path, "workflow")
	if err != nil {
		t.Fatal(err)
	}

	sentinel := errors.New("no flights available")
	wrapped := Instrument(logger, "book_flight", func(ctx context.Context) error {
		return sentinel
	})
	if err := wrapped(context.Background()); !errors.Is(err, sentinel) {
		t.Fatalf("wrapped() error = %v, want the original error", err)
	}
	logger.Close()

	records := readRecords(t, path)
	if len(records) != 2 {
		t.Fatalf("got %d records, want start and failure", len(records))
	}
	if records[1].Level != "ERROR" {
		t.Errorf("failure level = %q", records[1].Level)
	}
	if !strings.HasPrefix(records[1].Message, "Error in book_flight after ") {
		t.Errorf("failure message = %q", records[1].Message)
	}
	if records[1].Exception != "no flights available" {
		t.Errorf("exception = %q", records[1].Exception)
	}
}

func TestCapability_LogsUnderComponentName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structured.log")
	logger, err := New(path, "root")
	if err != nil {
		t.Fatal(err)
	}

	capability := NewCapability(logger, "itinerary_builder")
	capability.LogInfo("built itinerary", map[string]any{"stops": 4})
	capability.LogWarning("partial availability", nil)
	capability.LogError("provider unreachable", nil)
	logger.Close()

	records := readRecords(t, path)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	wantLevels := []string{"INFO", "WARNING", "ERROR"}
	for i, rec := range records {
		if rec.Logger != "itinerary_builder" {
			t.Errorf("record %d logger = %q", i, rec.Logger)
		}
		if rec.Level != wantLevels[i] {
			t.Errorf("record %d level = %q, want %q", i, rec.Level, wantLevels[i])
		}
	}
}
