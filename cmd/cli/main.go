// logsense - log analysis for the travel planner service
//
// logsense reads the service's structured NDJSON log files and reports
// query patterns, error patterns, and an overall health verdict.
package main

import (
	"os"

	"github.com/tripweaver/logsense/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
