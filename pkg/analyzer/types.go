// Package analyzer computes time-windowed statistics over structured logs
// and derives a system health verdict.
package analyzer

import "time"

// TimeRange is the trailing analysis window [Start, End].
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Hours int       `json:"hours"`
}

// QuerySummary holds aggregate query counts for a window.
type QuerySummary struct {
	// TotalQueries is the number of query_received events.
	TotalQueries int `json:"total_queries"`

	// SuccessfulResponses is the number of query_response events.
	SuccessfulResponses int `json:"successful_responses"`

	// FailedQueries is the number of query_error events.
	FailedQueries int `json:"failed_queries"`

	// SuccessRate is SuccessfulResponses/TotalQueries as a percentage,
	// 0 when no queries were received.
	SuccessRate float64 `json:"success_rate"`
}

// ProcessingTimes holds statistics over reported query processing times.
// All fields are 0 when no processing times were observed.
type ProcessingTimes struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// PatternCount pairs a normalized query pattern with its occurrence count.
type PatternCount struct {
	Pattern string `json:"pattern"`
	Count   int    `json:"count"`
}

// LabelCount pairs a label (error type, module, function) with its count.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// QueryErrorSummary summarizes failed queries within a window.
type QueryErrorSummary struct {
	// TotalErrors is the number of query_error events.
	TotalErrors int `json:"total_errors"`

	// ErrorRate is TotalErrors/TotalQueries as a percentage,
	// 0 when no queries were received.
	ErrorRate float64 `json:"error_rate"`
}

// QueryAnalysis is the result of analyzing query patterns over a window.
type QueryAnalysis struct {
	TimeRange       TimeRange         `json:"time_range"`
	Summary         QuerySummary      `json:"summary"`
	ProcessingTimes ProcessingTimes   `json:"processing_times"`
	PopularQueries  []PatternCount    `json:"popular_queries"`
	ErrorSummary    QueryErrorSummary `json:"error_summary"`
}

// ErrorSummary aggregates ERROR and CRITICAL records within a window.
type ErrorSummary struct {
	// TotalErrors is the number of ERROR and CRITICAL records.
	TotalErrors int `json:"total_errors"`

	// ErrorTypes is the top 10 heuristic error-type labels by frequency.
	ErrorTypes []LabelCount `json:"error_types"`

	// ErrorModules is the top 10 originating modules by frequency.
	ErrorModules []LabelCount `json:"error_modules"`

	// ErrorFunctions is the top 10 originating functions by frequency.
	ErrorFunctions []LabelCount `json:"error_functions"`
}

// RecentError is one recent ERROR or CRITICAL record, message truncated.
type RecentError struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Module    string    `json:"module"`
	Function  string    `json:"function"`
}

// ErrorAnalysis is the result of analyzing error patterns over a window.
type ErrorAnalysis struct {
	TimeRange    TimeRange     `json:"time_range"`
	Summary      ErrorSummary  `json:"summary"`
	RecentErrors []RecentError `json:"recent_errors"`
}

// Health status values.
const (
	StatusHealthy  = "healthy"
	StatusWarning  = "warning"
	StatusCritical = "critical"
)

// LastHourSummary carries the raw analyzer summaries behind a health verdict.
type LastHourSummary struct {
	Queries QuerySummary `json:"queries"`
	Errors  ErrorSummary `json:"errors"`
}

// Health is the system health verdict for the trailing hour.
type Health struct {
	// Status is healthy, warning, or critical.
	Status string `json:"status"`

	// HealthScore is the derived 0-100 score.
	HealthScore float64 `json:"health_score"`

	// LastHourSummary holds the raw summaries the verdict was derived from.
	LastHourSummary LastHourSummary `json:"last_hour_summary"`

	// Recommendations lists triggered recommendation messages.
	Recommendations []string `json:"recommendations"`
}
