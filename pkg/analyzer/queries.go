package analyzer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/tripweaver/logsense/pkg/parser"
)

// ErrQueryLogNotFound reports that the query log file does not exist.
// Callers must branch on this rather than treat it as zero activity: an
// empty window over an existing file is a different, non-error result.
var ErrQueryLogNotFound = errors.New("query log file not found")

// Query event types carried in extra.type.
const (
	EventQueryReceived = "query_received"
	EventQueryResponse = "query_response"
	EventQueryError    = "query_error"
)

var digitRuns = regexp.MustCompile(`\d+`)

// Normalize maps a query to its pattern form: lower-cased with every
// maximal run of decimal digits replaced by the placeholder X.
func Normalize(query string) string {
	return digitRuns.ReplaceAllString(strings.ToLower(query), "X")
}

// AnalyzeQueryPatterns analyzes query traffic over the trailing window of
// the given number of hours. Returns ErrQueryLogNotFound when the query
// log file is absent.
func (a *Analyzer) AnalyzeQueryPatterns(ctx context.Context, hours int) (*QueryAnalysis, error) {
	window := a.window(hours)

	path := a.cfg.QueryLogPath()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrQueryLogNotFound, path)
		}
		return nil, fmt.Errorf("checking query log: %w", err)
	}

	src := parser.NewFileSource(path, parser.WithTimeRange(window.Start, window.End))
	defer src.Close()

	records, err := parser.ReadAll(ctx, src)
	if err != nil {
		return nil, err
	}

	var (
		received  int
		responded int
		errored   int
		times     []float64
		patterns  = newCounter()
	)

	for _, rec := range records {
		switch rec.ExtraString("type") {
		case EventQueryReceived:
			received++
			patterns.Add(Normalize(rec.ExtraString("query")))
		case EventQueryResponse:
			responded++
			if t, ok := rec.ExtraFloat("processing_time"); ok {
				times = append(times, t)
			}
		case EventQueryError:
			errored++
		}
	}

	return &QueryAnalysis{
		TimeRange: window,
		Summary: QuerySummary{
			TotalQueries:        received,
			SuccessfulResponses: responded,
			FailedQueries:       errored,
			SuccessRate:         rate(responded, received),
		},
		ProcessingTimes: timeStats(times),
		PopularQueries:  popularQueries(patterns),
		ErrorSummary: QueryErrorSummary{
			TotalErrors: errored,
			ErrorRate:   rate(errored, received),
		},
	}, nil
}

// rate returns part/total as a percentage, 0 when total is 0.
func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// timeStats computes summary statistics; all zeros for an empty input.
func timeStats(times []float64) ProcessingTimes {
	if len(times) == 0 {
		return ProcessingTimes{}
	}

	sorted := make([]float64, len(times))
	copy(sorted, times)
	sort.Float64s(sorted)

	var sum float64
	for _, t := range times {
		sum += t
	}

	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return ProcessingTimes{
		Count:   len(times),
		Average: sum / float64(len(times)),
		Median:  median,
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
	}
}

func popularQueries(patterns *counter) []PatternCount {
	top := patterns.MostCommon(10)
	result := make([]PatternCount, len(top))
	for i, lc := range top {
		result[i] = PatternCount{Pattern: lc.Label, Count: lc.Count}
	}
	return result
}
