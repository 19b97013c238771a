package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rshade/selectkit/internal/cli/pagination"
	"github.com/rshade/selectkit/internal/config"
	"github.com/rshade/selectkit/internal/engine"
	"github.com/rshade/selectkit/internal/engine/cache"
	"github.com/rshade/selectkit/internal/items"
)

// ExitError carries a specific process exit code out of a command.
type ExitError struct {
	Code   int
	Reason string
}

func (e *ExitError) Error() string {
	return e.Reason
}

// exitCodeCancelled matches the shell convention for an interrupted command.
const exitCodeCancelled = 130

// searchFlags are the flags shared by commands that run a search.
type searchFlags struct {
	query     string
	fields    []string
	display   string
	sort      string
	output    string
	highlight bool
	class     string
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "case-insensitive text to search for")
	cmd.Flags().StringSliceVar(&f.fields, "fields", nil, "fields to search (default from config)")
	cmd.Flags().StringVar(&f.display, "display", "", "field used as the row label (default name, label, then id)")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort as field or field:asc|desc")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output format: table, json, or yaml (default from config)")
	cmd.Flags().BoolVar(&f.highlight, "highlight", false, "include highlighted markup for each row")
	cmd.Flags().StringVar(&f.class, "highlight-class", "", "CSS class for highlighted matches (default from config)")
}

// request builds an engine request from the flags, falling back to cfg for
// anything unset.
func (f *searchFlags) request(cfg *config.Config, sources []string) (*engine.Request, error) {
	field, order, err := pagination.ParseSort(f.sort)
	if err != nil {
		return nil, err
	}

	fields := f.fields
	if len(fields) == 0 {
		fields = cfg.Search.Fields
	}
	display := f.display
	if display == "" {
		display = cfg.Search.DisplayField
	}
	class := f.class
	if class == "" {
		class = cfg.Search.HighlightClass
	}

	return &engine.Request{
		Sources:        sources,
		Query:          f.query,
		Fields:         fields,
		DisplayField:   display,
		SortField:      field,
		SortOrder:      order,
		Highlight:      f.highlight,
		HighlightClass: class,
	}, nil
}

func (f *searchFlags) outputFormat(cfg *config.Config) (string, error) {
	format := f.output
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	switch format {
	case config.OutputTable, config.OutputJSON, config.OutputYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want table, json, or yaml)", format)
	}
}

// newEngine creates a search engine with the configured result cache.
// --no-cache leaves the engine without a store.
func newEngine(cmd *cobra.Command, cfg *config.Config) *engine.Engine {
	loader := items.NewLoader()
	loader.Stdin = cmd.InOrStdin()

	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache || !cfg.Cache.Enabled {
		return engine.New(loader, nil)
	}

	store, err := newCacheStore(cfg)
	if err != nil {
		logger.Warn().Ctx(cmd.Context()).Err(err).Msg("result cache unavailable, continuing without it")
		return engine.New(loader, nil)
	}
	return engine.New(loader, store)
}

func newCacheStore(cfg *config.Config) (*cache.FileStore, error) {
	return cache.NewFileStore(cfg.Cache.Directory, cfg.Cache.Enabled, cfg.Cache.TTLSeconds)
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func secondsDuration(s int) time.Duration {
	return time.Duration(s) * time.Second
}
