package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Match.OutputDir) == "" {
		c.Match.OutputDir = defaultOutputDir
	}
	dir, err := expandHome(strings.TrimSpace(c.Match.OutputDir))
	if err != nil {
		return fmt.Errorf("match.output_dir: %w", err)
	}
	c.Match.OutputDir = dir

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
