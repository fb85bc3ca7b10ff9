package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Import.BatchSize < 1 {
		return errors.New("import.batch_size must be at least 1")
	}
	if c.Import.LockTimeoutSeconds < 1 {
		return errors.New("import.lock_timeout_seconds must be at least 1")
	}
	if c.Rules.DefaultWeeklyGoal < 1 || c.Rules.DefaultWeeklyGoal > 7 {
		return errors.New("rules.default_weekly_goal must be between 1 and 7")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
