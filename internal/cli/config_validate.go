package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/selectkit/internal/config"
	"github.com/rshade/selectkit/internal/engine/cache"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the effective configuration: the global file, the project
overlay and SELECTKIT_* environment overrides, merged.

This includes:
- Schema version compatibility
- Non-negative scroll heights and rate intervals
- Cache TTL range
- Output and log format names`,
		Example: `  # Validate current configuration
  selectkit config validate

  # Validate and show detailed information
  selectkit config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg := config.GetGlobalConfig()

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Search fields: %s\n", strings.Join(cfg.Search.Fields, ", "))
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	cmd.Printf("  Debounce: %dms, throttle: %dms\n", cfg.Rate.DebounceMS, cfg.Rate.ThrottleMS)

	if cfg.Cache.Enabled {
		cmd.Printf("  Cache: %s (ttl %s)\n", cfg.Cache.Directory,
			cache.FormatDuration(secondsDuration(cfg.Cache.TTLSeconds)))
	} else {
		cmd.Println("  Cache: disabled")
	}
}
