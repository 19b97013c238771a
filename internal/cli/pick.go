package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/rshade/selectkit/internal/cli/pagination"
	"github.com/rshade/selectkit/internal/config"
	"github.com/rshade/selectkit/internal/engine"
	"github.com/rshade/selectkit/internal/items"
	"github.com/rshade/selectkit/internal/searchutil"
	"github.com/rshade/selectkit/internal/tui"
)

// ErrNoTerminal is returned when pick cannot reach an interactive terminal.
var ErrNoTerminal = errors.New("pick requires an interactive terminal")

const controllingTerminal = "/dev/tty"

// NewPickCmd creates the pick command: an interactive, searchable list that
// prints the chosen item.
func NewPickCmd() *cobra.Command {
	var (
		fields  []string
		display string
		sortStr string
		title   string
		printF  string
		height  int
	)

	cmd := &cobra.Command{
		Use:   "pick FILE...",
		Short: "Pick one item interactively",
		Long: `Pick opens a searchable list on the terminal. Typing filters the items
(debounced by rate.debounce_ms), arrows and the mouse wheel move through the
list, Enter prints the chosen item as JSON on stdout and Esc cancels with exit
status 130.

When items come from stdin ("-"), keystrokes are read from /dev/tty.`,
		Example: `  # Pick a product and extract its code with jq
  selectkit pick products.json | jq -r .code

  # Print only the id field
  selectkit pick products.json --print id`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.GetGlobalConfig()

			field, order, err := pagination.ParseSort(sortStr)
			if err != nil {
				return err
			}

			in, closeInput, err := pickerInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeInput()

			loader := items.NewLoader()
			loader.Stdin = cmd.InOrStdin()
			loaded, err := loader.LoadAll(ctx, args)
			if err != nil {
				return err
			}

			opts := pickerOptions(cfg)
			opts.Title = title
			opts.SortField = field
			opts.SortOrder = order
			if len(fields) > 0 {
				opts.Fields = fields
			}
			if display != "" {
				opts.DisplayField = display
			}
			if height > 0 {
				opts.Height = height
			}

			logger.Debug().Ctx(ctx).Int("items", len(loaded)).Strs("fields", opts.Fields).Msg("starting picker")

			item, err := tui.RunPicker(ctx, engine.New(nil, nil), loaded, opts, in, cmd.ErrOrStderr())
			if errors.Is(err, tui.ErrCancelled) {
				return &ExitError{Code: exitCodeCancelled, Reason: err.Error()}
			}
			if err != nil {
				return err
			}

			return printPicked(cmd.OutOrStdout(), item, printF)
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "fields to search (default from config)")
	cmd.Flags().StringVar(&display, "display", "", "field used as the row label")
	cmd.Flags().StringVar(&sortStr, "sort", "", "sort as field or field:asc|desc")
	cmd.Flags().StringVar(&title, "title", "", "title shown above the search box")
	cmd.Flags().StringVar(&printF, "print", "", "print only this field of the chosen item")
	cmd.Flags().IntVar(&height, "height", 0, "number of list rows (default scroll.picker_height)")

	return cmd
}

// pickerOptions maps configuration onto picker options.
func pickerOptions(cfg *config.Config) tui.PickerOptions {
	return tui.PickerOptions{
		Fields:               cfg.Search.Fields,
		DisplayField:         cfg.Search.DisplayField,
		Height:               cfg.Scroll.PickerHeight,
		Debounce:             millis(cfg.Rate.DebounceMS),
		ThrottleLimit:        millis(cfg.Rate.ThrottleMS),
		NotificationDuration: millis(cfg.Rate.NotificationMS),
	}
}

// pickerInput returns the reader for keystrokes. Stdin is used when it is a
// terminal and not also an item source; otherwise the controlling terminal.
func pickerInput(cmd *cobra.Command, sources []string) (io.Reader, func(), error) {
	noop := func() {}

	if !slices.Contains(sources, items.StdinSource) && isTerminal(os.Stdin) {
		return cmd.InOrStdin(), noop, nil
	}

	tty, err := os.Open(controllingTerminal)
	if err != nil {
		return nil, noop, fmt.Errorf("%w: %w", ErrNoTerminal, err)
	}
	if !isTerminal(tty) {
		_ = tty.Close()
		return nil, noop, ErrNoTerminal
	}
	return tty, func() { _ = tty.Close() }, nil
}

func printPicked(w io.Writer, item searchutil.Item, field string) error {
	if field == "" {
		return renderJSON(w, item)
	}
	_, err := fmt.Fprintln(w, searchutil.ToString(item.Get(field)))
	return err
}
