package logger

// Config holds the configuration for the logger.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format selects the log encoding: "json" for production, "console" for development.
	Format string `mapstructure:"format" default:"json"`
}
