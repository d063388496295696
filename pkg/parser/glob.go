package parser

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ListLogFiles returns the log files in dir keyed by base name without the
// .log extension (e.g. "structured" -> "<dir>/structured.log").
func ListLogFiles(dir string) (map[string]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.log"))
	if err != nil {
		return nil, fmt.Errorf("listing log files in %s: %w", dir, err)
	}

	files := make(map[string]string, len(matches))
	for _, match := range matches {
		stem := strings.TrimSuffix(filepath.Base(match), ".log")
		files[stem] = match
	}

	return files, nil
}
