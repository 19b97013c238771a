package engine

import (
	"errors"
	"fmt"

	"github.com/rshade/selectkit/internal/cli/pagination"
	"github.com/rshade/selectkit/internal/searchutil"
)

// Request validation errors.
var (
	// ErrNilRequest is returned when Search is called without a request.
	ErrNilRequest = errors.New("search request cannot be nil")
	// ErrWindowWithPagination is returned when both a scroll window and paging are requested.
	ErrWindowWithPagination = errors.New("window and pagination are mutually exclusive")
	// ErrInvalidWindow is returned for negative window dimensions.
	ErrInvalidWindow = errors.New("window heights cannot be negative")
)

// Request describes one search over a set of item sources.
type Request struct {
	// Sources are item files (or "-" for stdin), concatenated in order.
	Sources []string
	// Query is matched case-insensitively against Fields. Blank matches everything.
	Query string
	// Fields are the item fields searched by Query.
	Fields []string
	// DisplayField selects the label shown for each row. Empty uses
	// name, then label, then id.
	DisplayField string
	// SortField and SortOrder order the matched items. Empty SortField keeps load order.
	SortField string
	SortOrder string
	// Pagination selects a page of matched items.
	Pagination pagination.PaginationParams
	// Window selects the rows visible at a scroll position. Exclusive with Pagination.
	Window *searchutil.VirtualScrollConfig
	// Highlight adds highlighted markup of the display text to each row.
	Highlight      bool
	HighlightClass string
}

// Validate checks the request for conflicting or out-of-range options.
func (r *Request) Validate() error {
	if r == nil {
		return ErrNilRequest
	}
	if err := r.Pagination.Validate(); err != nil {
		return fmt.Errorf("invalid pagination: %w", err)
	}
	if r.Window != nil {
		if r.Pagination.IsEnabled() {
			return ErrWindowWithPagination
		}
		if r.Window.ItemHeight < 0 || r.Window.ContainerHeight < 0 {
			return ErrInvalidWindow
		}
	}
	if r.SortField != "" && r.SortOrder != "" &&
		r.SortOrder != pagination.SortOrderAsc && r.SortOrder != pagination.SortOrderDesc {
		return fmt.Errorf("%w: got %q", pagination.ErrInvalidSortOrder, r.SortOrder)
	}
	return nil
}

// Row is one matched item ready for display.
type Row struct {
	// Index is the row's position among all matched items.
	Index       int             `json:"index"                 yaml:"index"`
	Display     string          `json:"display"               yaml:"display"`
	Highlighted string          `json:"highlighted,omitempty" yaml:"highlighted,omitempty"`
	Item        searchutil.Item `json:"item"                  yaml:"item"`
}

// Window describes the scroll geometry of a windowed result.
type Window struct {
	StartIndex  int     `json:"start_index"  yaml:"start_index"`
	EndIndex    int     `json:"end_index"    yaml:"end_index"`
	TotalHeight float64 `json:"total_height" yaml:"total_height"`
	OffsetY     float64 `json:"offset_y"     yaml:"offset_y"`
}

// Result is the output of a search.
type Result struct {
	Rows    []Row                      `json:"rows"             yaml:"rows"`
	Meta    *pagination.PaginationMeta `json:"meta,omitempty"   yaml:"meta,omitempty"`
	Window  *Window                    `json:"window,omitempty" yaml:"window,omitempty"`
	Total   int                        `json:"total"            yaml:"total"`
	Matched int                        `json:"matched"          yaml:"matched"`
	// Cached reports whether the result was served from the cache.
	Cached bool `json:"-" yaml:"-"`
}
