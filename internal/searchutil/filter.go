package searchutil

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Item is one selectable record: field name to value.
type Item map[string]any

// Get returns the value of field, or nil when absent.
func (it Item) Get(field string) any {
	if it == nil {
		return nil
	}
	return it[field]
}

// FilterByFields returns the items where at least one of fields contains query,
// compared case-insensitively on the fields' string forms. A blank query
// returns items itself. nil and absent fields never match.
func FilterByFields(items []Item, query string, fields []string) []Item {
	if strings.TrimSpace(query) == "" {
		return items
	}

	lowerQuery := strings.TrimSpace(strings.ToLower(query))
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if matchesAnyField(item, lowerQuery, fields) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func matchesAnyField(item Item, lowerQuery string, fields []string) bool {
	for _, field := range fields {
		value, ok := item[field]
		if !ok || value == nil {
			continue
		}
		if strings.Contains(strings.ToLower(ToString(value)), lowerQuery) {
			return true
		}
	}
	return false
}

// ToString renders a field value the way it is shown and searched: integral
// numbers without a fractional part, booleans as true/false, nil as "".
func ToString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return formatFloat(float64(val))
	case float64:
		return formatFloat(val)
	case json.Number:
		return val.String()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
