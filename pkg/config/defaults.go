package config

import "os"

// Default values for configuration.
const (
	DefaultLogDir            = "logs"
	DefaultSystemLog         = "structured.log"
	DefaultQueryLog          = "queries_structured.log"
	DefaultMinSuccessRate    = 95.0
	DefaultSlowQuerySeconds  = 30.0
	DefaultHourlyErrorBudget = 5
	DefaultRetentionDays     = 30
)

// Environment variable names.
const (
	EnvLogDir   = "LOGSENSE_LOG_DIR"
	EnvLogLevel = "LOGSENSE_LOG_LEVEL"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogDir:    DefaultLogDir,
		SystemLog: DefaultSystemLog,
		QueryLog:  DefaultQueryLog,
		Health: HealthConfig{
			MinSuccessRate:    DefaultMinSuccessRate,
			SlowQuerySeconds:  DefaultSlowQuerySeconds,
			HourlyErrorBudget: DefaultHourlyErrorBudget,
		},
		Retention: RetentionConfig{
			Days: DefaultRetentionDays,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if dir := os.Getenv(EnvLogDir); dir != "" {
		c.LogDir = dir
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
}
