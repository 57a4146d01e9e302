package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateWatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateWatch() error {
	if c.Watch.IntervalMS <= 0 {
		return fmt.Errorf("watch.interval_ms must be positive, got %d", c.Watch.IntervalMS)
	}
	if c.Watch.Burst <= 0 {
		return fmt.Errorf("watch.burst must be positive, got %d", c.Watch.Burst)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (want debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}
