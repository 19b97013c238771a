package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/selectkit/internal/config"
	"github.com/rshade/selectkit/internal/engine"
	"github.com/rshade/selectkit/internal/format"
	"github.com/rshade/selectkit/internal/searchutil"
	"github.com/rshade/selectkit/internal/tui"
)

const (
	tabPadding   = 2
	yamlIndent   = 2
	emptyCellStr = "-"
)

// tableOptions controls how a result is rendered as a table.
type tableOptions struct {
	columns []string
	query   string
	// color styles the matched part of each label for a terminal.
	color   bool
	display config.DisplayConfig
}

// renderJSON writes v as indented JSON.
func renderJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// renderYAML writes v as YAML.
func renderYAML(w io.Writer, v any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// renderResult writes a search result in the requested format.
func renderResult(w io.Writer, outputFormat string, result *engine.Result, opts tableOptions) error {
	switch outputFormat {
	case config.OutputJSON:
		return renderJSON(w, result)
	case config.OutputYAML:
		return renderYAML(w, result)
	default:
		return renderResultTable(w, result, opts)
	}
}

func renderResultTable(w io.Writer, result *engine.Result, opts tableOptions) error {
	if len(result.Rows) == 0 {
		_, err := fmt.Fprintln(w, "No matching items.")
		if err != nil {
			return err
		}
		return renderSummary(w, result)
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)

	// LABEL is last: terminal styling adds escape bytes tabwriter would count.
	header := append([]string{"#"}, upperAll(opts.columns)...)
	header = append(header, "LABEL")
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	fmt.Fprintln(tw, strings.Join(separators(header), "\t"))

	for _, row := range result.Rows {
		label := row.Display
		if opts.color {
			label = tui.HighlightTerminal(label, opts.query)
		}
		cells := []string{strconv.Itoa(row.Index + 1)}
		for _, col := range opts.columns {
			cells = append(cells, formatCell(row.Item.Get(col), opts.display))
		}
		cells = append(cells, label)
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	return renderSummary(w, result)
}

func renderSummary(w io.Writer, result *engine.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s of %s items matched",
		format.FormatNumber(float64(result.Matched), 0),
		format.FormatNumber(float64(result.Total), 0))

	if m := result.Meta; m != nil {
		fmt.Fprintf(&b, " | page %d of %d", m.CurrentPage, m.TotalPages)
	}
	if win := result.Window; win != nil {
		fmt.Fprintf(&b, " | rows %d-%d, offset %s of %s",
			win.StartIndex, win.EndIndex,
			format.FormatNumber(win.OffsetY, 0),
			format.FormatNumber(win.TotalHeight, 0))
	}
	if result.Cached {
		b.WriteString(" (cached)")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// formatCell renders a field value for a table cell.
func formatCell(v any, display config.DisplayConfig) string {
	switch val := v.(type) {
	case nil:
		return emptyCellStr
	case time.Time:
		return format.FormatDate(val, display.DateLayout)
	case float64:
		if val == math.Trunc(val) {
			return format.FormatNumber(val, 0)
		}
		return format.FormatNumber(val, display.Decimals)
	case int:
		return format.FormatNumber(float64(val), 0)
	case map[string]any, []any:
		data, err := json.Marshal(val)
		if err != nil {
			return searchutil.ToString(val)
		}
		return string(data)
	default:
		if s := searchutil.ToString(val); s != "" {
			return s
		}
		return emptyCellStr
	}
}

func upperAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToUpper(s)
	}
	return out
}

func separators(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.Repeat("-", len(h))
	}
	return out
}
