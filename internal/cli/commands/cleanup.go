package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tripweaver/logsense/pkg/logging"
	"github.com/tripweaver/logsense/pkg/retention"
)

// NewCleanupCommand creates the cleanup command.
func NewCleanupCommand(global *GlobalOptions) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete old log files",
		Long: `Delete log files (including rotated backups) whose modification time
is older than the retention threshold.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := global.Config(cmd.Context())
			if err != nil {
				return err
			}

			if days == 0 {
				days = cfg.Retention.Days
			}

			opLog := logging.NewOperational(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

			deleted, err := retention.Cleanup(cfg.LogDir, days)
			if err != nil {
				return err
			}

			opLog.Debug().Int("deleted", len(deleted)).Int("days", days).Msg("log cleanup finished")

			w := cmd.OutOrStdout()
			if len(deleted) == 0 {
				fmt.Fprintf(w, "No log files older than %d days.\n", days)
				return nil
			}
			for _, path := range deleted {
				fmt.Fprintf(w, "Deleted %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Age threshold in days (default from config)")

	return cmd
}
