package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/selectkit/internal/config"
	"github.com/rshade/selectkit/internal/searchutil"
)

// NewWindowCmd creates the window command: the rows a fixed-row-height list
// would render at a scroll position.
func NewWindowCmd() *cobra.Command {
	var (
		flags  searchFlags
		window searchutil.VirtualScrollConfig
	)

	cmd := &cobra.Command{
		Use:   "window FILE...",
		Short: "Show the rows visible at a scroll position",
		Long: `Window searches like the search command, then keeps only the rows that a
virtual-scroll list would render: the rows intersecting the container at the
scroll offset plus one buffer row. Heights default to the scroll section of
the configuration.`,
		Example: `  # Rows visible 800px down a 300px container of 40px rows
  selectkit window products.json --item-height 40 --container-height 300 --scroll-top 800`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.GetGlobalConfig()

			outputFormat, err := flags.outputFormat(cfg)
			if err != nil {
				return err
			}
			req, err := flags.request(cfg, args)
			if err != nil {
				return err
			}

			win := window
			if !cmd.Flags().Changed("item-height") {
				win.ItemHeight = cfg.Scroll.ItemHeight
			}
			if !cmd.Flags().Changed("container-height") {
				win.ContainerHeight = cfg.Scroll.ContainerHeight
			}
			req.Window = &win

			result, err := newEngine(cmd, cfg).Search(cmd.Context(), req)
			if err != nil {
				return err
			}

			return renderResult(cmd.OutOrStdout(), outputFormat, result, tableOptions{
				columns: req.Fields,
				query:   req.Query,
				color:   flags.highlight && isTerminal(os.Stdout),
				display: cfg.Display,
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().Float64Var(&window.ItemHeight, "item-height", searchutil.DefaultItemHeight, "height of one row")
	cmd.Flags().Float64Var(&window.ContainerHeight, "container-height", searchutil.DefaultContainerHeight,
		"height of the scroll container")
	cmd.Flags().Float64Var(&window.ScrollTop, "scroll-top", 0, "scroll offset from the top of the list")

	return cmd
}
