package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/selectkit/internal/searchutil"
)

// NewIDCmd creates the id command, which prints fresh component identifiers.
func NewIDCmd() *cobra.Command {
	var (
		count    int
		sortable bool
	)

	cmd := &cobra.Command{
		Use:   "id",
		Short: "Generate component identifiers",
		Long: `Generate prints identifiers of the form "ss-" followed by ten lowercase
base-32 characters. --sortable prints full ULIDs, which sort by creation time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return errors.New("--count must be at least 1")
			}

			generate := searchutil.GenerateID
			if sortable {
				generate = searchutil.GenerateSortableID
			}
			for range count {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), generate()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers to print")
	cmd.Flags().BoolVar(&sortable, "sortable", false, "print time-sortable ULIDs")

	return cmd
}
