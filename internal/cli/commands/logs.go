package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tripweaver/logsense/pkg/output"
	"github.com/tripweaver/logsense/pkg/parser"
)

// LogsOptions holds flags for the logs command.
type LogsOptions struct {
	Level string
	Hours int
}

// NewLogsCommand creates the logs command.
func NewLogsCommand(global *GlobalOptions) *cobra.Command {
	opts := &LogsOptions{}

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent log records",
		Long: `Show recent records from the general structured log.

The level filter selects:
  system   all records (default)
  error    ERROR and CRITICAL records
  warning  WARNING records`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogs(cmd, global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Level, "level", "system", "Level filter (system|error|warning)")
	cmd.Flags().IntVar(&opts.Hours, "hours", 1, "Hours to look back")

	return cmd
}

func runLogs(cmd *cobra.Command, global *GlobalOptions, opts *LogsOptions) error {
	keep, err := levelFilter(opts.Level)
	if err != nil {
		return err
	}

	a, _, err := global.Analyzer(cmd.Context())
	if err != nil {
		return err
	}

	end := time.Now()
	start := end.Add(-time.Duration(opts.Hours) * time.Hour)

	records, err := a.ReadRange(cmd.Context(), start, end)
	if err != nil {
		return err
	}

	filtered := records[:0]
	for _, rec := range records {
		if keep(rec) {
			filtered = append(filtered, rec)
		}
	}

	title := fmt.Sprintf("RECENT %s LOGS (%dh)", strings.ToUpper(opts.Level), opts.Hours)
	w := cmd.OutOrStdout()
	return global.render(w, filtered, func(r *output.TextRenderer) {
		r.RenderRecords(w, title, filtered)
	})
}

func levelFilter(level string) (func(*parser.Record) bool, error) {
	switch level {
	case "system":
		return func(*parser.Record) bool { return true }, nil
	case "error":
		return func(r *parser.Record) bool {
			return r.Level == "ERROR" || r.Level == "CRITICAL"
		}, nil
	case "warning":
		return func(r *parser.Record) bool { return r.Level == "WARNING" }, nil
	default:
		return nil, fmt.Errorf("unknown level %q (use system, error, or warning)", level)
	}
}
