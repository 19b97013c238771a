package searchutil

import "math"

// DefaultFallbackField is the field GetDisplayText falls back to.
const DefaultFallbackField = "name"

// GetDisplayText returns the first non-empty of item[displayField] and
// item[fallbackField] as a string. fallbackField defaults to "name".
func GetDisplayText(item Item, displayField, fallbackField string) string {
	if item == nil {
		return ""
	}
	if fallbackField == "" {
		fallbackField = DefaultFallbackField
	}
	if v := item[displayField]; truthy(v) {
		return ToString(v)
	}
	if v := item[fallbackField]; truthy(v) {
		return ToString(v)
	}
	return ""
}

// Formatter turns an item into a label.
type Formatter interface {
	Format(item Item) string
}

// FieldFormatter formats an item as the value of a single field.
type FieldFormatter string

// Format implements Formatter.
func (f FieldFormatter) Format(item Item) string {
	if v := item.Get(string(f)); truthy(v) {
		return ToString(v)
	}
	return ""
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(Item) string

// Format implements Formatter.
func (f FormatterFunc) Format(item Item) string {
	return f(item)
}

// FormatDisplay labels item with formatter. A nil formatter uses name, then
// label, then the id.
func FormatDisplay(item Item, formatter Formatter) string {
	if formatter != nil {
		return formatter.Format(item)
	}
	for _, field := range []string{"name", "label"} {
		if v := item.Get(field); truthy(v) {
			return ToString(v)
		}
	}
	if v := item.Get("id"); truthy(v) {
		return ToString(v)
	}
	return ""
}

// truthy mirrors the falsy set of loosely typed records: nil, "", false and 0.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case int:
		return val != 0
	case int64:
		return val != 0
	case int32:
		return val != 0
	case uint:
		return val != 0
	case uint64:
		return val != 0
	case float32:
		return val != 0 && !math.IsNaN(float64(val))
	case float64:
		return val != 0 && !math.IsNaN(val)
	default:
		return true
	}
}
