package searchutil

import (
	"regexp"
)

// DefaultHighlightClass is the CSS class used when none is given.
const DefaultHighlightClass = "bg-yellow-200"

// EscapeRegExp escapes the characters . * + ? ^ $ { } ( ) | [ ] \ so s
// matches literally inside a regular expression.
func EscapeRegExp(s string) string {
	return regexp.QuoteMeta(s)
}

// HighlightMatch wraps every case-insensitive occurrence of query in text with
// <span class="highlightClass">. Text is returned unchanged when text or query
// is empty.
func HighlightMatch(text, query, highlightClass string) string {
	if highlightClass == "" {
		highlightClass = DefaultHighlightClass
	}
	open := `<span class="` + highlightClass + `">`
	return HighlightFunc(text, query, func(match string) string {
		return open + match + "</span>"
	})
}

// HighlightFunc replaces every case-insensitive, non-overlapping occurrence of
// query in text with wrap(match). The matched text keeps its original casing.
func HighlightFunc(text, query string, wrap func(string) string) string {
	if text == "" || query == "" {
		return text
	}
	re, err := regexp.Compile("(?i)" + EscapeRegExp(query))
	if err != nil {
		return text
	}
	return re.ReplaceAllStringFunc(text, wrap)
}
