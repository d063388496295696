package commands

import (
	"github.com/spf13/cobra"

	"github.com/tripweaver/logsense/pkg/output"
)

// NewHealthCommand creates the health command.
func NewHealthCommand(global *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show the system health verdict",
		Long: `Evaluate the trailing 1-hour window of query and error activity and
report a health status (healthy, warning, critical), a 0-100 score, and
recommendations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, _, err := global.Analyzer(cmd.Context())
			if err != nil {
				return err
			}

			health, err := a.SystemHealth(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			return global.render(w, health, func(r *output.TextRenderer) {
				r.RenderHealth(w, health)
			})
		},
	}
}
