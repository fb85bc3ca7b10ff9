package config

const (
	defaultDataDir            = "~/.local/share/timecard"
	defaultLogDir             = "~/.local/share/timecard/logs"
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultImportBatchSize    = 1000
	defaultLockTimeoutSeconds = 30
	defaultWeeklyGoal         = 3
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Import: Import{
			BatchSize:          defaultImportBatchSize,
			LockTimeoutSeconds: defaultLockTimeoutSeconds,
		},
		Rules: Rules{
			DefaultWeeklyGoal: defaultWeeklyGoal,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
