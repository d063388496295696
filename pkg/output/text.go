package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tripweaver/logsense/pkg/analyzer"
	"github.com/tripweaver/logsense/pkg/parser"
)

// maxDisplayedRecords bounds the recent-logs view.
const maxDisplayedRecords = 20

// Level and status colors.
var (
	colorDebug    = lipgloss.Color("6") // cyan
	colorInfo     = lipgloss.Color("2") // green
	colorWarning  = lipgloss.Color("3") // yellow
	colorError    = lipgloss.Color("1") // red
	colorCritical = lipgloss.Color("5") // magenta
)

var levelColors = map[string]lipgloss.Color{
	"DEBUG":    colorDebug,
	"INFO":     colorInfo,
	"WARNING":  colorWarning,
	"ERROR":    colorError,
	"CRITICAL": colorCritical,
}

var statusColors = map[string]lipgloss.Color{
	analyzer.StatusHealthy:  colorInfo,
	analyzer.StatusWarning:  colorWarning,
	analyzer.StatusCritical: colorError,
}

// TextRenderer renders analysis results as human-readable, color-coded text.
type TextRenderer struct {
	noColor bool
	header  lipgloss.Style
}

// TextOption configures a TextRenderer.
type TextOption func(*TextRenderer)

// WithNoColor disables color output.
func WithNoColor() TextOption {
	return func(r *TextRenderer) {
		r.noColor = true
	}
}

// NewTextRenderer creates a text renderer.
func NewTextRenderer(opts ...TextOption) *TextRenderer {
	r := &TextRenderer{
		header: lipgloss.NewStyle().Bold(true),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *TextRenderer) colored(color lipgloss.Color, s string) string {
	if r.noColor {
		return s
	}
	return lipgloss.NewStyle().Foreground(color).Render(s)
}

func (r *TextRenderer) level(level string) string {
	color, ok := levelColors[level]
	if !ok {
		return level
	}
	return r.colored(color, level)
}

func (r *TextRenderer) title(w io.Writer, text string) {
	if !r.noColor {
		text = r.header.Render(text)
	}
	fmt.Fprintf(w, "\n%s\n%s\n", text, strings.Repeat("=", 50))
}

// RenderHealth renders the system health view.
func (r *TextRenderer) RenderHealth(w io.Writer, health *analyzer.Health) {
	r.title(w, "SYSTEM HEALTH STATUS")

	status := strings.ToUpper(health.Status)
	if color, ok := statusColors[health.Status]; ok {
		status = r.colored(color, status)
	}
	fmt.Fprintf(w, "Status: %s\n", status)
	fmt.Fprintf(w, "Health Score: %.0f/100\n", health.HealthScore)

	queries := health.LastHourSummary.Queries
	errs := health.LastHourSummary.Errors
	fmt.Fprintln(w, "\nLast Hour Summary:")
	fmt.Fprintf(w, "  Total Queries: %d\n", queries.TotalQueries)
	fmt.Fprintf(w, "  Successful: %d\n", queries.SuccessfulResponses)
	fmt.Fprintf(w, "  Failed: %d\n", queries.FailedQueries)
	fmt.Fprintf(w, "  Success Rate: %.1f%%\n", queries.SuccessRate)
	fmt.Fprintf(w, "  Total Errors: %d\n", errs.TotalErrors)

	fmt.Fprintln(w, "\nRecommendations:")
	for _, rec := range health.Recommendations {
		fmt.Fprintf(w, "  - %s\n", rec)
	}
}

// RenderRecords renders a recent-logs view, showing at most the last 20 records.
func (r *TextRenderer) RenderRecords(w io.Writer, title string, records []*parser.Record) {
	r.title(w, title)

	if len(records) == 0 {
		fmt.Fprintln(w, "No logs found in the specified time range.")
		return
	}

	if len(records) > maxDisplayedRecords {
		records = records[len(records)-maxDisplayedRecords:]
	}

	for _, rec := range records {
		message := rec.Message
		if runes := []rune(message); len(runes) > 100 {
			message = string(runes[:100]) + "..."
		}
		fmt.Fprintf(w, "%s [%s] %s\n",
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			r.level(rec.Level),
			message)
	}
}

// RenderQueryAnalysis renders the query pattern view.
func (r *TextRenderer) RenderQueryAnalysis(w io.Writer, qa *analyzer.QueryAnalysis) {
	r.title(w, fmt.Sprintf("QUERY ANALYSIS (%dh)", qa.TimeRange.Hours))

	fmt.Fprintf(w, "Total Queries: %d\n", qa.Summary.TotalQueries)
	fmt.Fprintf(w, "Successful: %d\n", qa.Summary.SuccessfulResponses)
	fmt.Fprintf(w, "Failed: %d\n", qa.Summary.FailedQueries)
	fmt.Fprintf(w, "Success Rate: %.1f%%\n", qa.Summary.SuccessRate)

	if qa.ProcessingTimes.Count > 0 {
		fmt.Fprintln(w, "\nProcessing Times:")
		fmt.Fprintf(w, "  Average: %.2fs\n", qa.ProcessingTimes.Average)
		fmt.Fprintf(w, "  Median: %.2fs\n", qa.ProcessingTimes.Median)
		fmt.Fprintf(w, "  Min: %.2fs\n", qa.ProcessingTimes.Min)
		fmt.Fprintf(w, "  Max: %.2fs\n", qa.ProcessingTimes.Max)
	}

	if len(qa.PopularQueries) > 0 {
		fmt.Fprintln(w, "\nPopular Query Patterns:")
		for _, pattern := range qa.PopularQueries {
			text := pattern.Pattern
			if runes := []rune(text); len(runes) > 60 {
				text = string(runes[:60]) + "..."
			}
			fmt.Fprintf(w, "  %3dx: %s\n", pattern.Count, text)
		}
	}
}

// RenderErrorAnalysis renders the error pattern view.
func (r *TextRenderer) RenderErrorAnalysis(w io.Writer, ea *analyzer.ErrorAnalysis) {
	r.title(w, fmt.Sprintf("ERROR ANALYSIS (%dh)", ea.TimeRange.Hours))

	fmt.Fprintf(w, "Total Errors: %d\n", ea.Summary.TotalErrors)

	if ea.Summary.TotalErrors == 0 {
		return
	}

	fmt.Fprintln(w, "\nError Types:")
	for _, lc := range ea.Summary.ErrorTypes {
		fmt.Fprintf(w, "  %3dx: %s\n", lc.Count, lc.Label)
	}

	fmt.Fprintln(w, "\nError Modules:")
	for _, lc := range ea.Summary.ErrorModules {
		fmt.Fprintf(w, "  %3dx: %s\n", lc.Count, lc.Label)
	}

	fmt.Fprintln(w, "\nRecent Errors:")
	for _, rec := range ea.RecentErrors {
		fmt.Fprintf(w, "  %s [%s] %s\n",
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			r.level(rec.Level),
			rec.Message)
	}
}
