package searchutil

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

var (
	logger   = zerolog.Nop() //nolint:gochecknoglobals // Package logger, replaced via SetLogger.
	loggerMu sync.RWMutex    //nolint:gochecknoglobals // Guards logger.
)

// SetLogger sets the logger used for recoverable failures in this package.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l.With().Str("component", "searchutil").Logger()
}

func currentLogger() zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// SafeJSONParse decodes jsonString into a T. On malformed input it logs a
// warning and returns defaultValue.
func SafeJSONParse[T any](jsonString string, defaultValue T) T {
	var v T
	if err := json.Unmarshal([]byte(jsonString), &v); err != nil {
		l := currentLogger()
		l.Warn().Err(err).Int("length", len(jsonString)).Msg("JSON parse failed, using default")
		return defaultValue
	}
	return v
}
