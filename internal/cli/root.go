// Package cli provides the command-line interface for logsense.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/tripweaver/logsense/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
// Interrupt is a clean termination: it exits 0.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := NewRootCommand()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Interrupted.")
			return 0
		}
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	global := &commands.GlobalOptions{}

	rootCmd := &cobra.Command{
		Use:   "logsense",
		Short: "Analyze the travel planner's structured logs",
		Long: `logsense is a log analysis tool for the travel planner service.

It reads the service's structured NDJSON log files and reports:
  - Recent log activity with level filtering
  - Query traffic patterns and processing times
  - Error patterns grouped by type, module, and function
  - A system health verdict with recommendations

Every command re-scans the log files on demand; no state is kept
between runs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&global.ConfigPath, "config", "c", "", "Config file (YAML); defaults apply when omitted")
	flags.StringVar(&global.LogDir, "log-dir", "", "Log directory (overrides config)")
	flags.StringVarP(&global.Output, "output", "o", "text", "Output format (text|json)")
	flags.BoolVar(&global.NoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(commands.NewHealthCommand(global))
	rootCmd.AddCommand(commands.NewLogsCommand(global))
	rootCmd.AddCommand(commands.NewQueriesCommand(global))
	rootCmd.AddCommand(commands.NewErrorsCommand(global))
	rootCmd.AddCommand(commands.NewAllCommand(global))
	rootCmd.AddCommand(commands.NewReportCommand(global))
	rootCmd.AddCommand(commands.NewCleanupCommand(global))
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
