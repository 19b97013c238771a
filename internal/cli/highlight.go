package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/selectkit/internal/config"
	"github.com/rshade/selectkit/internal/searchutil"
	"github.com/rshade/selectkit/internal/tui"
)

// NewHighlightCmd creates the highlight command.
func NewHighlightCmd() *cobra.Command {
	var (
		class    string
		terminal bool
	)

	cmd := &cobra.Command{
		Use:   "highlight TEXT QUERY",
		Short: "Wrap every match of QUERY in TEXT",
		Long: `Highlight wraps each case-insensitive occurrence of QUERY in a
<span class="..."> element. QUERY is matched literally. With --terminal the
matches are styled for the terminal instead.`,
		Example: `  selectkit highlight "Pineapple" apple
  # Pine<span class="bg-yellow-200">apple</span>`,
		Args: cobra.ExactArgs(2), //nolint:mnd // TEXT and QUERY
		RunE: func(cmd *cobra.Command, args []string) error {
			text, query := args[0], args[1]

			var out string
			if terminal {
				out = tui.HighlightTerminal(text, query)
			} else {
				if class == "" {
					class = config.GetGlobalConfig().Search.HighlightClass
				}
				out = searchutil.HighlightMatch(text, query, class)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "CSS class of the span element (default from config)")
	cmd.Flags().BoolVar(&terminal, "terminal", false, "style matches for the terminal instead of markup")

	return cmd
}
