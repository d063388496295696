package commands

import (
	"github.com/spf13/cobra"

	"github.com/tripweaver/logsense/pkg/output"
)

// NewErrorsCommand creates the errors command.
func NewErrorsCommand(global *GlobalOptions) *cobra.Command {
	var hours int

	cmd := &cobra.Command{
		Use:   "errors",
		Short: "Show error pattern analysis",
		Long: `Aggregate ERROR and CRITICAL records over a trailing window, grouped
by derived error type, module, and function, with the most recent
occurrences listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, _, err := global.Analyzer(cmd.Context())
			if err != nil {
				return err
			}

			analysis, err := a.AnalyzeErrorPatterns(cmd.Context(), hours)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			return global.render(w, analysis, func(r *output.TextRenderer) {
				r.RenderErrorAnalysis(w, analysis)
			})
		},
	}

	cmd.Flags().IntVar(&hours, "hours", 24, "Hours to look back")

	return cmd
}
