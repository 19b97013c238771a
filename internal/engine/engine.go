package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rshade/selectkit/internal/cli/pagination"
	"github.com/rshade/selectkit/internal/engine/cache"
	"github.com/rshade/selectkit/internal/items"
	"github.com/rshade/selectkit/internal/logging"
	"github.com/rshade/selectkit/internal/searchutil"
)

// ItemLoader loads items from a list of sources.
type ItemLoader interface {
	LoadAll(ctx context.Context, sources []string) ([]searchutil.Item, error)
}

// Engine runs searches: load, filter, sort, page or window, then label rows.
type Engine struct {
	loader ItemLoader
	sorter pagination.Sorter
	store  *cache.FileStore
}

// New creates an Engine. store may be nil to disable result caching.
func New(loader ItemLoader, store *cache.FileStore) *Engine {
	return &Engine{
		loader: loader,
		sorter: pagination.NewItemSorter(),
		store:  store,
	}
}

// WithSorter replaces the default sorter.
func (e *Engine) WithSorter(s pagination.Sorter) *Engine {
	e.sorter = s
	return e
}

// Search loads req.Sources and runs req over them. Results over file sources
// are cached, keyed by the request and each file's size and modification time.
func (e *Engine) Search(ctx context.Context, req *Request) (*Result, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("operation", "search").
		Strs("sources", req.Sources).
		Str("query", req.Query).
		Strs("fields", req.Fields).
		Msg("starting search")

	cacheKey := e.cacheKey(req)
	if cacheKey != "" {
		if cached, ok := e.lookup(ctx, cacheKey); ok {
			return cached, nil
		}
	}

	loaded, err := e.loader.LoadAll(ctx, req.Sources)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}

	result := e.Apply(loaded, req)

	if cacheKey != "" {
		if setErr := e.store.SetValue(cacheKey, result); setErr != nil {
			log.Warn().Ctx(ctx).Str("component", "engine").Err(setErr).Msg("failed to cache search result")
		}
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Int("total", result.Total).
		Int("matched", result.Matched).
		Int("rows", len(result.Rows)).
		Dur("duration_ms", time.Since(start)).
		Msg("search complete")

	return result, nil
}

// Apply runs req over already-loaded items. req.Sources is ignored and req is
// assumed valid.
func (e *Engine) Apply(all []searchutil.Item, req *Request) *Result {
	matched := searchutil.FilterByFields(all, req.Query, req.Fields)

	order := req.SortOrder
	if order == "" {
		order = pagination.DefaultSortOrder
	}
	sorted := e.sorter.Sort(matched, req.SortField, order)

	result := &Result{
		Total:   len(all),
		Matched: len(sorted),
	}

	var (
		page  []searchutil.Item
		first int
	)
	switch {
	case req.Window != nil:
		w := searchutil.VirtualScroll(sorted, *req.Window)
		page = w.VisibleItems
		first = w.StartIndex
		result.Window = &Window{
			StartIndex:  w.StartIndex,
			EndIndex:    w.EndIndex,
			TotalHeight: w.TotalHeight,
			OffsetY:     w.OffsetY,
		}
	case req.Pagination.IsEnabled():
		page = pagination.Apply(req.Pagination, sorted)
		first, _ = req.Pagination.CalculateOffsetLimit()
		if req.Pagination.IsPageBased() && len(sorted) > 0 && first >= len(sorted) {
			first = ((len(sorted) - 1) / req.Pagination.PageSize) * req.Pagination.PageSize
		}
		meta := pagination.NewPaginationMeta(req.Pagination, len(sorted))
		result.Meta = &meta
	default:
		page = sorted
	}

	query := strings.TrimSpace(req.Query)
	result.Rows = make([]Row, 0, len(page))
	for i, item := range page {
		row := Row{
			Index:   first + i,
			Display: displayText(item, req.DisplayField),
			Item:    item,
		}
		if req.Highlight {
			row.Highlighted = searchutil.HighlightMatch(row.Display, query, req.HighlightClass)
		}
		result.Rows = append(result.Rows, row)
	}
	return result
}

func displayText(item searchutil.Item, field string) string {
	if field == "" {
		return searchutil.FormatDisplay(item, nil)
	}
	return searchutil.GetDisplayText(item, field, "")
}

func (e *Engine) lookup(ctx context.Context, key string) (*Result, bool) {
	log := logging.FromContext(ctx)

	entry, err := e.store.Get(key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheNotFound) {
			log.Debug().Ctx(ctx).Str("component", "engine").Err(err).Msg("cache miss")
		}
		return nil, false
	}

	var result Result
	if decodeErr := entry.Decode(&result); decodeErr != nil {
		log.Warn().Ctx(ctx).Str("component", "engine").Err(decodeErr).Msg("discarding unreadable cache entry")
		_ = e.store.Delete(key)
		return nil, false
	}
	result.Cached = true

	log.Debug().
		Ctx(ctx).
		Str("component", "engine").
		Str("cache_key", key).
		Dur("age", entry.Age()).
		Msg("serving search from cache")
	return &result, true
}

// cacheKey returns "" when the request is not cacheable: caching is off, or
// a source is stdin or cannot be stat'ed.
func (e *Engine) cacheKey(req *Request) string {
	if e.store == nil || !e.store.IsEnabled() {
		return ""
	}

	sources := make([]string, 0, len(req.Sources))
	for _, src := range req.Sources {
		if src == items.StdinSource {
			return ""
		}
		info, err := os.Stat(src)
		if err != nil {
			return ""
		}
		sources = append(sources, fmt.Sprintf("%s@%d:%d", src, info.ModTime().UnixNano(), info.Size()))
	}

	params := cache.KeyParams{
		Operation: "search",
		Sources:   sources,
		Query:     req.Query,
		Fields:    req.Fields,
		Display:   req.DisplayField,
		SortField: req.SortField,
		SortOrder: req.SortOrder,
	}
	if req.Pagination.IsEnabled() {
		params.Pagination = &cache.PaginationKeyParams{
			Limit:    req.Pagination.Limit,
			Offset:   req.Pagination.Offset,
			Page:     req.Pagination.Page,
			PageSize: req.Pagination.PageSize,
		}
	}
	if req.Window != nil {
		params.Window = &cache.WindowKeyParams{
			ItemHeight:      req.Window.ItemHeight,
			ContainerHeight: req.Window.ContainerHeight,
			ScrollTop:       req.Window.ScrollTop,
		}
	}

	key, err := cache.GenerateKey(params)
	if err != nil {
		return ""
	}
	// Highlight markup is part of the stored rows.
	if req.Highlight {
		key = cache.GenerateSimpleKey(key, "highlight", req.HighlightClass)
	}
	return key
}
