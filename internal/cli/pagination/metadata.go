package pagination

import (
	"math"
)

// PaginationMeta contains metadata about paged results.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewPaginationMeta builds metadata for totalCount matched items.
func NewPaginationMeta(params PaginationParams, totalCount int) PaginationMeta {
	pageSize := params.PageSize
	if pageSize == 0 {
		pageSize = params.Limit
	}
	if pageSize == 0 {
		pageSize = totalCount
	}

	totalPages := 0
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(pageSize)))
	}

	currentPage := params.Page
	if currentPage == 0 && pageSize > 0 {
		currentPage = params.Offset/pageSize + 1
	}
	if currentPage == 0 {
		currentPage = 1
	}
	// Page-based requests past the end are served the last page.
	if params.IsPageBased() && totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	}

	return PaginationMeta{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalCount,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}
