// Package pagination provides sorting and paging for item lists returned by
// the CLI.
//
// This package contains:
//   - PaginationParams: --limit/--offset or --page/--page-size handling
//   - PaginationMeta: response metadata for paged results
//   - ItemSorter: stable column sort, numeric when both values are numbers
//
// Search results are sorted first and paged second, so page N is stable for a
// given query and sort expression.
package pagination
