package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Pagination defaults and validation limits.
const (
	DefaultLimit     = 0 // 0 = no limit
	MaxLimit         = 10000
	MaxPageSize      = 1000
	DefaultSortOrder = SortOrderAsc
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// sortPartsMax is the maximum number of parts in a sort string (field:order).
const sortPartsMax = 2

// Common validation errors.
var (
	ErrNegativeLimit        = errors.New("limit cannot be negative")
	ErrNegativeOffset       = errors.New("offset cannot be negative")
	ErrNegativePage         = errors.New("page cannot be negative")
	ErrNegativePageSize     = errors.New("page-size cannot be negative")
	ErrLimitTooLarge        = fmt.Errorf("limit must be at most %d", MaxLimit)
	ErrPageSizeTooLarge     = fmt.Errorf("page-size must be at most %d", MaxPageSize)
	ErrMixedPaginationModes = errors.New("page and offset parameters are mutually exclusive")
	ErrPageSizeWithoutPage  = errors.New("page must be specified when using page-size")
	ErrPageWithoutPageSize  = errors.New("page-size must be specified when using page")
	ErrInvalidSortOrder     = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat    = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'price:desc')")
	ErrEmptySortField       = errors.New("sort field cannot be empty")
)

// PaginationParams holds paging flags. Offset-based (--limit/--offset) and
// page-based (--page/--page-size) modes are mutually exclusive.
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	Limit    int
	Offset   int
	Page     int // 1-based; 0 means page mode is off
	PageSize int
}

// Validate checks bounds and mode consistency.
func (p PaginationParams) Validate() error {
	switch {
	case p.Limit < 0:
		return ErrNegativeLimit
	case p.Offset < 0:
		return ErrNegativeOffset
	case p.Page < 0:
		return ErrNegativePage
	case p.PageSize < 0:
		return ErrNegativePageSize
	case p.Limit > MaxLimit:
		return ErrLimitTooLarge
	case p.PageSize > MaxPageSize:
		return ErrPageSizeTooLarge
	case p.Page > 0 && p.Offset > 0:
		return ErrMixedPaginationModes
	case p.Page == 0 && p.PageSize > 0:
		return ErrPageSizeWithoutPage
	case p.PageSize == 0 && p.Page > 0:
		return ErrPageWithoutPageSize
	}
	return nil
}

// IsPageBased returns true if page-based pagination is active.
func (p PaginationParams) IsPageBased() bool {
	return p.Page > 0
}

// IsEnabled returns true if any paging is requested.
func (p PaginationParams) IsEnabled() bool {
	return p.Limit > 0 || p.Page > 0 || p.Offset > 0
}

// CalculateOffsetLimit returns the effective offset and limit. A zero limit
// means "to the end".
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func (p PaginationParams) CalculateOffsetLimit() (offset, limit int) {
	if p.IsPageBased() {
		return (p.Page - 1) * p.PageSize, p.PageSize
	}
	return p.Offset, p.Limit
}

// Apply returns the requested page of items. Page-based requests past the end
// are capped to the last page; offset-based requests past the end are empty.
func Apply[T any](p PaginationParams, items []T) []T {
	if len(items) == 0 {
		return items
	}

	offset, limit := p.CalculateOffsetLimit()

	if p.IsPageBased() && offset >= len(items) {
		offset = ((len(items) - 1) / p.PageSize) * p.PageSize
	}
	if offset >= len(items) {
		return []T{}
	}

	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

// ParseSort parses "field" or "field:order". An empty string means no sort.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (field, order string, err error) {
	if strings.TrimSpace(sortStr) == "" {
		return "", DefaultSortOrder, nil
	}

	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		field = strings.TrimSpace(parts[0])
		order = DefaultSortOrder
	case sortPartsMax:
		field = strings.TrimSpace(parts[0])
		order = strings.ToLower(strings.TrimSpace(parts[1]))
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if field == "" {
		return "", "", ErrEmptySortField
	}
	if order != SortOrderAsc && order != SortOrderDesc {
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return field, order, nil
}
