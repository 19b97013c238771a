package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/selectkit/internal/config"
	"github.com/rshade/selectkit/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the selectkit CLI.
// It loads configuration, wires up logging and tracing, and registers the
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "selectkit",
		Short:         "Search, page and pick items from JSON and YAML lists",
		Long:          "selectkit: filter item lists by several fields, sort and page them, and pick one interactively",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $SELECTKIT_CONFIG or ~/.selectkit/config.yaml)")
	cmd.PersistentFlags().Bool("no-cache", false, "bypass the search result cache")

	cmd.AddCommand(
		NewSearchCmd(),
		NewWindowCmd(),
		NewHighlightCmd(),
		NewPickCmd(),
		NewIDCmd(),
		newCacheCmd(),
		newConfigCmd(),
	)

	return cmd
}

// loadConfig builds the effective configuration and installs it globally.
// An explicit --config replaces both the global file and the project overlay.
func loadConfig(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg := config.Default()
		cfg.SetConfigPath(path)
		if err := cfg.Load(); err != nil {
			return err
		}
		cfg.ApplyEnvOverrides()
		config.SetGlobalConfig(cfg)
		return nil
	}

	overlay := ""
	if cwd, err := os.Getwd(); err == nil {
		overlay = config.FindProjectConfig(ctx, cwd)
	}
	config.SetGlobalConfig(config.NewWithProjectConfig(ctx, overlay))
	return nil
}

const rootCmdExample = `  # Search two item files by name and code
  selectkit search products.json extra.yaml --query apple --fields name,code

  # Sort by price, descending, and show the second page of 20
  selectkit search products.json --sort price:desc --page 2 --page-size 20

  # Show the rows visible at a scroll position
  selectkit window products.json --item-height 40 --container-height 300 --scroll-top 800

  # Pick one item interactively and print it as JSON
  selectkit pick products.json --fields name,code

  # Wrap matches in markup
  selectkit highlight "Pineapple" apple

  # Initialize configuration
  selectkit config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}

// newCacheCmd creates the cache command group.
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "cache", Short: "Search result cache commands"}
	cmd.AddCommand(NewCacheStatsCmd(), NewCacheClearCmd(), NewCacheCleanupCmd())
	return cmd
}
