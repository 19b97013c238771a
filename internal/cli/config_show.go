package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/selectkit/internal/config"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration.
func NewConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Example: `  selectkit config show
  selectkit config show -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			switch output {
			case config.OutputYAML:
				return renderYAML(cmd.OutOrStdout(), cfg)
			case config.OutputJSON:
				return renderJSON(cmd.OutOrStdout(), cfg)
			default:
				return fmt.Errorf("unsupported output format %q (want yaml or json)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.OutputYAML, "output format: yaml or json")

	return cmd
}
