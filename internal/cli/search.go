package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/selectkit/internal/cli/pagination"
	"github.com/rshade/selectkit/internal/config"
)

// NewSearchCmd creates the search command: filter, sort and page items
// loaded from one or more files.
func NewSearchCmd() *cobra.Command {
	var (
		flags    searchFlags
		paging   pagination.PaginationParams
		columnsF []string
	)

	cmd := &cobra.Command{
		Use:   "search FILE...",
		Short: "Search items by several fields",
		Long: `Search loads items from JSON, JSON-lines or YAML files ("-" reads JSON from
stdin), keeps the items where any of the search fields contains the query,
then sorts and pages them.`,
		Example: `  # Items whose name or code contains "ap"
  selectkit search products.json -q ap --fields name,code

  # Cheapest first, 10 per page
  selectkit search products.yaml --sort price --page 1 --page-size 10 -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.GetGlobalConfig()

			outputFormat, err := flags.outputFormat(cfg)
			if err != nil {
				return err
			}
			req, err := flags.request(cfg, args)
			if err != nil {
				return err
			}
			req.Pagination = paging

			logger.Debug().Ctx(ctx).
				Strs("sources", args).
				Str("query", req.Query).
				Str("output", outputFormat).
				Msg("running search")

			result, err := newEngine(cmd, cfg).Search(ctx, req)
			if err != nil {
				return err
			}

			columns := columnsF
			if len(columns) == 0 {
				columns = req.Fields
			}
			return renderResult(cmd.OutOrStdout(), outputFormat, result, tableOptions{
				columns: columns,
				query:   req.Query,
				color:   flags.highlight && isTerminal(os.Stdout),
				display: cfg.Display,
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&paging.Limit, "limit", 0, "maximum number of items to return")
	cmd.Flags().IntVar(&paging.Offset, "offset", 0, "number of matched items to skip")
	cmd.Flags().IntVar(&paging.Page, "page", 0, "page number, starting at 1 (requires --page-size)")
	cmd.Flags().IntVar(&paging.PageSize, "page-size", 0, "items per page")
	cmd.Flags().StringSliceVar(&columnsF, "columns", nil, "table columns (default the search fields)")
	cmd.MarkFlagsMutuallyExclusive("page", "offset")

	return cmd
}
