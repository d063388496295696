package analyzer

import (
	"context"
	"strings"
)

// maxRecentErrors bounds the recent-errors listing.
const maxRecentErrors = 10

// maxMessageLength bounds recent-error messages before truncation.
const maxMessageLength = 200

// AnalyzeErrorPatterns aggregates ERROR and CRITICAL records from the
// general structured log over the trailing window of the given number of
// hours. A missing log file yields an empty result.
func (a *Analyzer) AnalyzeErrorPatterns(ctx context.Context, hours int) (*ErrorAnalysis, error) {
	window := a.window(hours)

	records, err := a.ReadRange(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	var (
		total     int
		types     = newCounter()
		modules   = newCounter()
		functions = newCounter()
		recent    []RecentError
	)

	for _, rec := range records {
		if rec.Level != "ERROR" && rec.Level != "CRITICAL" {
			continue
		}
		total++

		types.Add(errorType(rec.Message))
		modules.Add(rec.Module)
		functions.Add(rec.Function)

		recent = append(recent, RecentError{
			Timestamp: rec.Timestamp,
			Level:     rec.Level,
			Message:   truncateMessage(rec.Message),
			Module:    rec.Module,
			Function:  rec.Function,
		})
		if len(recent) > maxRecentErrors {
			recent = recent[1:]
		}
	}

	return &ErrorAnalysis{
		TimeRange: window,
		Summary: ErrorSummary{
			TotalErrors:    total,
			ErrorTypes:     types.MostCommon(10),
			ErrorModules:   modules.MostCommon(10),
			ErrorFunctions: functions.MostCommon(10),
		},
		RecentErrors: recent,
	}, nil
}

// errorType derives a heuristic error-type label from free-form message
// text: the whitespace-delimited word immediately before the first
// "Exception" (or, failing that, "Error") with that suffix appended, or
// "Unknown" when neither substring occurs. Fragile by nature, but kept
// for compatibility with existing log content.
func errorType(message string) string {
	for _, marker := range []string{"Exception", "Error"} {
		idx := strings.Index(message, marker)
		if idx < 0 {
			continue
		}
		words := strings.Fields(message[:idx])
		if len(words) == 0 {
			return marker
		}
		return words[len(words)-1] + marker
	}
	return "Unknown"
}

// truncateMessage caps a message at maxMessageLength characters,
// appending an ellipsis marker when truncated.
func truncateMessage(message string) string {
	runes := []rune(message)
	if len(runes) <= maxMessageLength {
		return message
	}
	return string(runes[:maxMessageLength]) + "..."
}
