package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// FromEnvironment returns the default configuration with environment
// overrides applied, for use when no config file is given.
func FromEnvironment() *Config {
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	return cfg
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.LogDir == "" {
		return errors.New("log_dir: a log directory is required")
	}

	if err := validateFileName("system_log", cfg.SystemLog); err != nil {
		return err
	}
	if err := validateFileName("query_log", cfg.QueryLog); err != nil {
		return err
	}

	if cfg.Health.MinSuccessRate < 0 || cfg.Health.MinSuccessRate > 100 {
		return fmt.Errorf("health.min_success_rate: %v is not a percentage", cfg.Health.MinSuccessRate)
	}
	if cfg.Health.SlowQuerySeconds < 0 {
		return fmt.Errorf("health.slow_query_seconds: must be >= 0, got %v", cfg.Health.SlowQuerySeconds)
	}
	if cfg.Health.HourlyErrorBudget < 0 {
		return fmt.Errorf("health.hourly_error_budget: must be >= 0, got %d", cfg.Health.HourlyErrorBudget)
	}

	if cfg.Retention.Days < 1 {
		return fmt.Errorf("retention.days: must be >= 1, got %d", cfg.Retention.Days)
	}

	switch cfg.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format: %q (use json or console)", cfg.Logging.Format)
	}

	return nil
}

func validateFileName(field, name string) error {
	if name == "" {
		return fmt.Errorf("%s: a file name is required", field)
	}
	if strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("%s: %q must be a bare file name within log_dir", field, name)
	}
	return nil
}
