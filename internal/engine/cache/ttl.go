package cache

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// TTL configuration constants and defaults.
const (
	// DefaultTTLSeconds is the default entry lifetime (1 day).
	DefaultTTLSeconds = 86400

	// MinTTLSeconds is the minimum allowed TTL.
	MinTTLSeconds = 1

	// MaxTTLSeconds is the maximum allowed TTL (30 days).
	MaxTTLSeconds = 30 * 86400

	minutesPerHour = 60
	hoursPerDay    = 24

	// EnvTTLSeconds overrides the TTL.
	EnvTTLSeconds = "SELECTKIT_CACHE_TTL_SECONDS"

	// EnvCacheEnabled enables or disables the cache.
	EnvCacheEnabled = "SELECTKIT_CACHE_ENABLED"

	// EnvCacheDir overrides the cache directory.
	EnvCacheDir = "SELECTKIT_CACHE_DIR"
)

// ErrInvalidTTL is returned for a TTL outside [MinTTLSeconds, MaxTTLSeconds].
var ErrInvalidTTL = fmt.Errorf("TTL must be between %d and %d seconds", MinTTLSeconds, MaxTTLSeconds)

// ValidateTTL checks that seconds is within range.
func ValidateTTL(seconds int) error {
	if seconds < MinTTLSeconds || seconds > MaxTTLSeconds {
		return fmt.Errorf("%w: got %d", ErrInvalidTTL, seconds)
	}
	return nil
}

// TTLFromEnv returns the TTL from the environment and whether a valid value was set.
func TTLFromEnv() (int, bool) {
	envVal := os.Getenv(EnvTTLSeconds)
	if envVal == "" {
		return 0, false
	}
	ttl, err := ParseTTL(envVal)
	if err != nil {
		return 0, false
	}
	return ttl, true
}

// EnabledFromEnv returns the enabled flag from the environment and whether it was set.
func EnabledFromEnv() (bool, bool) {
	envVal := os.Getenv(EnvCacheEnabled)
	if envVal == "" {
		return false, false
	}
	enabled, err := strconv.ParseBool(envVal)
	if err != nil {
		return false, false
	}
	return enabled, true
}

// DirFromEnv returns the cache directory from the environment, or "".
func DirFromEnv() string {
	return os.Getenv(EnvCacheDir)
}

// FormatDuration formats a duration compactly: "30s", "5m", "2h30m", "3d2h".
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	if d < hoursPerDay*time.Hour {
		hours := int(d.Hours())
		minutes := int(d.Minutes()) % minutesPerHour
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	days := int(d.Hours()) / hoursPerDay
	hours := int(d.Hours()) % hoursPerDay
	if hours == 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dd%dh", days, hours)
}

// ParseTTL parses integer seconds ("3600") or a duration ("1h30m").
func ParseTTL(s string) (int, error) {
	if seconds, err := strconv.Atoi(s); err == nil {
		return seconds, ValidateTTL(seconds)
	}

	duration, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid TTL format: %w", err)
	}
	seconds := int(duration.Seconds())
	return seconds, ValidateTTL(seconds)
}
