// Package format holds display helpers shared by the CLI and the picker:
// grouped number formatting, token-based date layouts and record cloning.
package format

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultDateLayout is the layout used by FormatDate when none is given.
const DefaultDateLayout = "YYYY-MM-DD HH:mm:ss"

// DefaultDecimals is the precision used by FormatNumber callers by default.
const DefaultDecimals = 2

// printer is the locale-aware message printer for number formatting.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats num with the given number of decimals and thousand
// separators. Example: FormatNumber(1234.5, 2) returns "1,234.50".
func FormatNumber(num float64, decimals int) string {
	if math.IsNaN(num) || math.IsInf(num, 0) {
		return strconv.FormatFloat(num, 'f', -1, 64)
	}
	if decimals < 0 {
		decimals = 0
	}

	formatted := strconv.FormatFloat(num, 'f', decimals, 64)
	intPart, fracPart, hasFrac := strings.Cut(formatted, ".")

	negative := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return formatted
	}

	grouped := printer.Sprintf("%d", n)
	if negative {
		grouped = "-" + grouped
	}
	if hasFrac {
		return grouped + "." + fracPart
	}
	return grouped
}

// FormatDate renders t using a token layout: YYYY, MM, DD, HH, mm, ss.
// An empty layout uses DefaultDateLayout.
func FormatDate(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	r := strings.NewReplacer(
		"YYYY", strconv.Itoa(t.Year()),
		"MM", fmt.Sprintf("%02d", int(t.Month())),
		"DD", fmt.Sprintf("%02d", t.Day()),
		"HH", fmt.Sprintf("%02d", t.Hour()),
		"mm", fmt.Sprintf("%02d", t.Minute()),
		"ss", fmt.Sprintf("%02d", t.Second()),
	)
	return r.Replace(layout)
}

// DeepClone copies v through a JSON round trip. Values that cannot be
// marshalled produce an error.
func DeepClone[T any](v T) (T, error) {
	var out T
	data, err := json.Marshal(v)
	if err != nil {
		return out, fmt.Errorf("cloning value: %w", err)
	}
	if err = json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("cloning value: %w", err)
	}
	return out, nil
}
