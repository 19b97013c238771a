package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/selectkit/internal/config"
	"github.com/rshade/selectkit/internal/engine/cache"
	"github.com/rshade/selectkit/internal/format"
)

const bytesPerKiB = 1024

// openCache returns the configured store, or nil with a notice when caching
// is turned off.
func openCache(cmd *cobra.Command) (*cache.FileStore, error) {
	cfg := config.GetGlobalConfig()
	if !cfg.Cache.Enabled {
		cmd.Println("Cache is disabled (cache.enabled: false)")
		return nil, nil //nolint:nilnil // A disabled cache is not an error for these commands.
	}
	return newCacheStore(cfg)
}

// NewCacheStatsCmd creates the cache stats command.
func NewCacheStatsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show search result cache usage",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openCache(cmd)
			if err != nil || store == nil {
				return err
			}

			stats, err := store.Stats()
			if err != nil {
				return fmt.Errorf("reading cache stats: %w", err)
			}

			switch output {
			case config.OutputJSON:
				return renderJSON(cmd.OutOrStdout(), stats)
			case config.OutputYAML:
				return renderYAML(cmd.OutOrStdout(), stats)
			}

			cmd.Printf("Directory: %s\n", stats.Directory)
			cmd.Printf("Entries:   %s (%s expired)\n",
				format.FormatNumber(float64(stats.Entries), 0),
				format.FormatNumber(float64(stats.Expired), 0))
			cmd.Printf("Size:      %s KiB\n", format.FormatNumber(float64(stats.SizeBytes)/bytesPerKiB, 1))
			cmd.Printf("TTL:       %s\n", cache.FormatDuration(secondsDuration(stats.TTLSeconds)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.OutputTable, "output format: table, json, or yaml")

	return cmd
}

// NewCacheClearCmd creates the cache clear command.
func NewCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached search result",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openCache(cmd)
			if err != nil || store == nil {
				return err
			}
			if err = store.Clear(); err != nil {
				return fmt.Errorf("clearing cache: %w", err)
			}
			logger.Info().Ctx(cmd.Context()).Str("directory", store.Directory()).Msg("cache cleared")
			cmd.Printf("Cache cleared: %s\n", store.Directory())
			return nil
		},
	}
}

// NewCacheCleanupCmd creates the cache cleanup command.
func NewCacheCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Remove expired and unreadable cache entries",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openCache(cmd)
			if err != nil || store == nil {
				return err
			}
			removed, err := store.CleanupExpired()
			if err != nil && !errors.Is(err, cache.ErrCacheDisabled) {
				return fmt.Errorf("cleaning cache: %w", err)
			}
			cmd.Printf("Removed %s expired entries\n", format.FormatNumber(float64(removed), 0))
			return nil
		},
	}
}
