package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tripweaver/logsense/pkg/logging"
	"github.com/tripweaver/logsense/pkg/output"
)

// NewReportCommand creates the report command.
func NewReportCommand(global *GlobalOptions) *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a full analysis report",
		Long: `Snapshot the 1-hour health verdict, the 24-hour query and error
analyses, and the available log files into a JSON report file.

The default file name embeds a timestamp
(analysis_report_<YYYYMMDD>_<HHMMSS>.json) and is written into the log
directory. Each run writes exactly one file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cfg, err := global.Analyzer(cmd.Context())
			if err != nil {
				return err
			}

			opLog := logging.NewOperational(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

			report, err := output.BuildReport(cmd.Context(), a)
			if err != nil {
				return err
			}

			path, err := output.NewExporter(cfg.LogDir).Export(report, outputFile)
			if err != nil {
				return err
			}

			opLog.Debug().Str("path", path).Msg("analysis report written")
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&outputFile, "output-file", "", "Write the report to this path instead of the default")

	return cmd
}
