package commands

import (
	"github.com/spf13/cobra"

	"github.com/tripweaver/logsense/pkg/output"
)

// NewQueriesCommand creates the queries command.
func NewQueriesCommand(global *GlobalOptions) *cobra.Command {
	var hours int

	cmd := &cobra.Command{
		Use:   "queries",
		Short: "Show query pattern analysis",
		Long: `Analyze query traffic over a trailing window: totals, success rate,
processing time statistics, and the most frequent normalized query
patterns.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, _, err := global.Analyzer(cmd.Context())
			if err != nil {
				return err
			}

			analysis, err := a.AnalyzeQueryPatterns(cmd.Context(), hours)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			return global.render(w, analysis, func(r *output.TextRenderer) {
				r.RenderQueryAnalysis(w, analysis)
			})
		},
	}

	cmd.Flags().IntVar(&hours, "hours", 24, "Hours to look back")

	return cmd
}
