package config

const (
	defaultOutputDir       = "."
	defaultWatchIntervalMS = 500
	defaultWatchBurst      = 1
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Match: Match{
			OutputDir: defaultOutputDir,
		},
		Watch: Watch{
			IntervalMS: defaultWatchIntervalMS,
			Burst:      defaultWatchBurst,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
