package config

import (
	"github.com/rshade/selectkit/internal/logging"
)

// ToLoggingConfig converts the logging section into a logging.Config. An empty
// File means stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		File:   lc.File,
	}
}

// GetLoggingConfig returns the Logging section of the global configuration.
// Flag overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
