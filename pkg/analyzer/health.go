package analyzer

import (
	"context"
	"errors"
	"fmt"
)

// healthWindowHours is the fixed evaluation window for health verdicts.
const healthWindowHours = 1

// SystemHealth evaluates the trailing 1-hour window and derives a health
// verdict with recommendations. A missing query log is treated as zero
// query activity rather than a failure.
func (a *Analyzer) SystemHealth(ctx context.Context) (*Health, error) {
	queries, err := a.AnalyzeQueryPatterns(ctx, healthWindowHours)
	if err != nil {
		if !errors.Is(err, ErrQueryLogNotFound) {
			return nil, err
		}
		queries = &QueryAnalysis{}
	}

	errs, err := a.AnalyzeErrorPatterns(ctx, healthWindowHours)
	if err != nil {
		return nil, err
	}

	// The score subtracts a raw error count from a percentage. The
	// dimensional mismatch is inherited behavior, pending product
	// sign-off on a normalized formula.
	score := clamp(queries.Summary.SuccessRate-float64(errs.Summary.TotalErrors), 0, 100)

	status := StatusCritical
	switch {
	case score >= 90:
		status = StatusHealthy
	case score >= 70:
		status = StatusWarning
	}

	return &Health{
		Status:      status,
		HealthScore: score,
		LastHourSummary: LastHourSummary{
			Queries: queries.Summary,
			Errors:  errs.Summary,
		},
		Recommendations: a.recommendations(queries, errs),
	}, nil
}

// recommendations evaluates each rule independently and appends its
// message when triggered. A single all-clear message is returned when
// nothing triggers.
func (a *Analyzer) recommendations(queries *QueryAnalysis, errs *ErrorAnalysis) []string {
	var recs []string

	thresholds := a.cfg.Health

	if queries.Summary.SuccessRate < thresholds.MinSuccessRate {
		recs = append(recs, fmt.Sprintf(
			"Success rate is below %.0f%%. Check for recurring errors.", thresholds.MinSuccessRate))
	}

	if queries.ProcessingTimes.Average > thresholds.SlowQuerySeconds {
		recs = append(recs, "Average processing time is high. Consider optimizing queries.")
	}

	if errs.Summary.TotalErrors > thresholds.HourlyErrorBudget {
		recs = append(recs, "High error rate detected. Check logs for recurring issues.")
	}

	if len(recs) == 0 {
		recs = append(recs, "System is operating normally.")
	}

	return recs
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
