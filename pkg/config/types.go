// Package config provides configuration loading and validation.
package config

import "path/filepath"

// Config is the top-level configuration.
type Config struct {
	// LogDir is the directory holding the structured log files.
	LogDir string `yaml:"log_dir"`

	// SystemLog is the general structured log file name within LogDir.
	SystemLog string `yaml:"system_log"`

	// QueryLog is the query-specific structured log file name within LogDir.
	QueryLog string `yaml:"query_log"`

	// Health holds the thresholds used for recommendations.
	Health HealthConfig `yaml:"health"`

	// Retention controls log file cleanup.
	Retention RetentionConfig `yaml:"retention"`

	// Logging configures the tool's own operational logging.
	Logging LoggingConfig `yaml:"logging"`
}

// HealthConfig holds health evaluation thresholds.
type HealthConfig struct {
	// MinSuccessRate is the success-rate percentage below which a
	// recurring-errors recommendation is raised.
	MinSuccessRate float64 `yaml:"min_success_rate"`

	// SlowQuerySeconds is the average processing time, in seconds, above
	// which a slow-processing recommendation is raised.
	SlowQuerySeconds float64 `yaml:"slow_query_seconds"`

	// HourlyErrorBudget is the number of errors per hour above which a
	// high-error-rate recommendation is raised.
	HourlyErrorBudget int `yaml:"hourly_error_budget"`
}

// RetentionConfig controls log file cleanup.
type RetentionConfig struct {
	// Days is the age threshold; files not modified for this many days
	// are eligible for deletion.
	Days int `yaml:"days"`
}

// LoggingConfig configures operational logging output.
type LoggingConfig struct {
	// Level is the minimum level (debug, info, warn, error).
	Level string `yaml:"level"`

	// Format selects json or console output.
	Format string `yaml:"format"`
}

// SystemLogPath returns the full path of the general structured log.
func (c *Config) SystemLogPath() string {
	return filepath.Join(c.LogDir, c.SystemLog)
}

// QueryLogPath returns the full path of the query structured log.
func (c *Config) QueryLogPath() string {
	return filepath.Join(c.LogDir, c.QueryLog)
}
