// Package retention removes log files past their age threshold.
package retention

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultDays is the default retention threshold.
const DefaultDays = 30

// Cleanup deletes files in dir matching *.log* whose modification time is
// older than the given number of days, including rotated backups.
// Returns the paths deleted.
func Cleanup(dir string, days int) ([]string, error) {
	if days <= 0 {
		days = DefaultDays
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	matches, err := filepath.Glob(filepath.Join(dir, "*.log*"))
	if err != nil {
		return nil, fmt.Errorf("listing log files in %s: %w", dir, err)
	}

	var deleted []string
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return deleted, fmt.Errorf("checking %s: %w", path, err)
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			return deleted, fmt.Errorf("removing %s: %w", path, err)
		}
		deleted = append(deleted, path)
	}

	return deleted, nil
}
