package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tripweaver/logsense/pkg/analyzer"
	"github.com/tripweaver/logsense/pkg/output"
	"github.com/tripweaver/logsense/pkg/parser"
)

// combinedView is the json form of the all command.
type combinedView struct {
	Health  *analyzer.Health        `json:"health"`
	Logs    []*parser.Record        `json:"logs"`
	Queries *analyzer.QueryAnalysis `json:"queries"`
	Errors  *analyzer.ErrorAnalysis `json:"errors"`
}

// NewAllCommand creates the all command.
func NewAllCommand(global *GlobalOptions) *cobra.Command {
	opts := &LogsOptions{}

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Show health, recent logs, query analysis, and error analysis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAll(cmd, global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Level, "level", "system", "Level filter for recent logs (system|error|warning)")
	cmd.Flags().IntVar(&opts.Hours, "hours", 1, "Hours to look back")

	return cmd
}

func runAll(cmd *cobra.Command, global *GlobalOptions, opts *LogsOptions) error {
	ctx := cmd.Context()

	keep, err := levelFilter(opts.Level)
	if err != nil {
		return err
	}

	a, _, err := global.Analyzer(ctx)
	if err != nil {
		return err
	}

	health, err := a.SystemHealth(ctx)
	if err != nil {
		return err
	}

	end := time.Now()
	records, err := a.ReadRange(ctx, end.Add(-time.Duration(opts.Hours)*time.Hour), end)
	if err != nil {
		return err
	}
	filtered := records[:0]
	for _, rec := range records {
		if keep(rec) {
			filtered = append(filtered, rec)
		}
	}

	queries, err := a.AnalyzeQueryPatterns(ctx, opts.Hours)
	if err != nil {
		return err
	}

	errPatterns, err := a.AnalyzeErrorPatterns(ctx, opts.Hours)
	if err != nil {
		return err
	}

	view := &combinedView{
		Health:  health,
		Logs:    filtered,
		Queries: queries,
		Errors:  errPatterns,
	}

	title := fmt.Sprintf("RECENT %s LOGS (%dh)", strings.ToUpper(opts.Level), opts.Hours)
	w := cmd.OutOrStdout()
	return global.render(w, view, func(r *output.TextRenderer) {
		r.RenderHealth(w, health)
		r.RenderRecords(w, title, filtered)
		r.RenderQueryAnalysis(w, queries)
		r.RenderErrorAnalysis(w, errPatterns)
	})
}
