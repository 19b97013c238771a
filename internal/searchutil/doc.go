// Package searchutil provides the small algorithms behind searchable,
// virtualized selection lists.
//
// Every function is independent and safe to call from any goroutine:
//   - Debounce/Throttle rate-limit callbacks (query input, scroll events)
//   - HighlightMatch wraps case-insensitive query matches in markup
//   - FilterByFields keeps items whose fields contain the query
//   - VirtualScroll computes the window of rows to render for a scroll offset
//   - GetDisplayText/FormatDisplay resolve a label for an item
//
// Functions that touch a rendering surface (ScrollIntoView, IsInViewport)
// operate on the Element and Viewport interfaces, so the rest of the package
// has no UI dependency.
package searchutil
