package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/selectkit/internal/engine/cache"
	"github.com/rshade/selectkit/internal/logging"
)

// Output formats accepted by output.default_format.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Defaults for a fresh configuration.
const (
	DefaultDebounceMS     = 300
	DefaultThrottleMS     = 100
	DefaultNotificationMS = 3000
	DefaultPickerHeight   = 10
	DefaultDecimals       = 2
	DefaultDateLayout     = "YYYY-MM-DD HH:mm:ss"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the selectkit configuration file.
//
// YAML Location: ~/.selectkit/config.yaml (or $SELECTKIT_CONFIG), with an
// optional project overlay in ./.selectkit.yaml.
type Config struct {
	// Version is the semver of the configuration schema.
	Version string        `yaml:"version" json:"version"`
	Search  SearchConfig  `yaml:"search"  json:"search"`
	Display DisplayConfig `yaml:"display" json:"display"`
	Scroll  ScrollConfig  `yaml:"scroll"  json:"scroll"`
	Rate    RateConfig    `yaml:"rate"    json:"rate"`
	Cache   CacheConfig   `yaml:"cache"   json:"cache"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Output  OutputConfig  `yaml:"output"  json:"output"`

	configPath string
}

// SearchConfig controls which fields are searched and how matches are shown.
type SearchConfig struct {
	Fields         []string `yaml:"fields"          json:"fields"`
	DisplayField   string   `yaml:"display_field"   json:"display_field"`
	HighlightClass string   `yaml:"highlight_class" json:"highlight_class"`
}

// DisplayConfig controls number and date rendering.
type DisplayConfig struct {
	Decimals   int    `yaml:"decimals"    json:"decimals"`
	DateLayout string `yaml:"date_layout" json:"date_layout"`
}

// ScrollConfig is the virtual scroll geometry.
type ScrollConfig struct {
	ItemHeight      float64 `yaml:"item_height"      json:"item_height"`
	ContainerHeight float64 `yaml:"container_height" json:"container_height"`
	// PickerHeight is the number of rows the terminal picker shows.
	PickerHeight int `yaml:"picker_height" json:"picker_height"`
}

// RateConfig holds debounce and throttle intervals in milliseconds.
type RateConfig struct {
	DebounceMS     int `yaml:"debounce_ms"     json:"debounce_ms"`
	ThrottleMS     int `yaml:"throttle_ms"     json:"throttle_ms"`
	NotificationMS int `yaml:"notification_ms" json:"notification_ms"`
}

// CacheConfig controls the search result cache.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"     json:"enabled"`
	TTLSeconds int    `yaml:"ttl_seconds" json:"ttl_seconds"`
	Directory  string `yaml:"directory"   json:"directory"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"  json:"level"`
	Format string `yaml:"format" json:"format"`
	File   string `yaml:"file"   json:"file"`
}

// OutputConfig controls CLI output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
}

// Default returns a configuration with built-in defaults and no file backing.
func Default() *Config {
	cacheDir := ""
	if dir, err := GetConfigDir(); err == nil {
		cacheDir = filepath.Join(dir, "cache")
	}

	return &Config{
		Version: CurrentVersion,
		Search: SearchConfig{
			Fields:         []string{"name", "label", "code"},
			HighlightClass: "bg-yellow-200",
		},
		Display: DisplayConfig{
			Decimals:   DefaultDecimals,
			DateLayout: DefaultDateLayout,
		},
		Scroll: ScrollConfig{
			ItemHeight:      40,
			ContainerHeight: 300,
			PickerHeight:    DefaultPickerHeight,
		},
		Rate: RateConfig{
			DebounceMS:     DefaultDebounceMS,
			ThrottleMS:     DefaultThrottleMS,
			NotificationMS: DefaultNotificationMS,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: cache.DefaultTTLSeconds,
			Directory:  cacheDir,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
		Output: OutputConfig{
			DefaultFormat: OutputTable,
		},
	}
}

// New returns the defaults overlaid with the config file (if present) and
// environment overrides. An unreadable file leaves the defaults in place;
// use Load to see the error.
func New() *Config {
	cfg := Default()
	cfg.configPath = GetConfigPath()
	_ = cfg.Load()
	cfg.ApplyEnvOverrides()
	return cfg
}

// ConfigPath returns the file this config loads from and saves to.
//
//nolint:revive // ConfigPath reads better than Path at call sites.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the backing file.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Load reads the backing file over the current values. A missing file is not
// an error.
func (c *Config) Load() error {
	if c.configPath == "" {
		return nil
	}
	data, err := os.ReadFile(c.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", c.configPath, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", c.configPath, err)
	}
	return CheckVersion(c.Version)
}

// Save writes the config as YAML to its backing file.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// ApplyEnvOverrides applies SELECTKIT_* environment variables.
func (c *Config) ApplyEnvOverrides() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv(EnvLogFormat); format != "" {
		c.Logging.Format = format
	}
	if ttl, ok := cache.TTLFromEnv(); ok {
		c.Cache.TTLSeconds = ttl
	}
	if enabled, ok := cache.EnabledFromEnv(); ok {
		c.Cache.Enabled = enabled
	}
	if dir := cache.DirFromEnv(); dir != "" {
		c.Cache.Directory = dir
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := CheckVersion(c.Version); err != nil {
		return err
	}

	var problems []string
	if c.Scroll.ItemHeight < 0 {
		problems = append(problems, "scroll.item_height cannot be negative")
	}
	if c.Scroll.ContainerHeight < 0 {
		problems = append(problems, "scroll.container_height cannot be negative")
	}
	if c.Scroll.PickerHeight < 0 {
		problems = append(problems, "scroll.picker_height cannot be negative")
	}
	if c.Rate.DebounceMS < 0 || c.Rate.ThrottleMS < 0 || c.Rate.NotificationMS < 0 {
		problems = append(problems, "rate intervals cannot be negative")
	}
	if c.Display.Decimals < 0 {
		problems = append(problems, "display.decimals cannot be negative")
	}
	if c.Cache.Enabled {
		if err := cache.ValidateTTL(c.Cache.TTLSeconds); err != nil {
			problems = append(problems, "cache.ttl_seconds: "+err.Error())
		}
	}
	if !slices.Contains([]string{OutputTable, OutputJSON, OutputYAML}, c.Output.DefaultFormat) {
		problems = append(problems, fmt.Sprintf("output.default_format %q is not one of table, json, yaml",
			c.Output.DefaultFormat))
	}
	if !slices.Contains(
		[]string{logging.FormatJSON, logging.FormatConsole, logging.FormatText},
		strings.ToLower(c.Logging.Format),
	) {
		problems = append(problems, fmt.Sprintf("logging.format %q is not one of json, console, text",
			c.Logging.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
