package searchutil

import "math"

// Virtual scroll defaults, in the same unit as the caller's scroll offset
// (pixels in a browser, rows in a terminal).
const (
	DefaultItemHeight      = 40
	DefaultContainerHeight = 300
)

// VirtualScrollConfig describes a fixed-row-height scroll container.
// Zero ItemHeight and ContainerHeight take the defaults.
type VirtualScrollConfig struct {
	ItemHeight      float64
	ContainerHeight float64
	ScrollTop       float64
}

// VirtualWindow is the slice of items to render for one scroll position.
type VirtualWindow[T any] struct {
	StartIndex   int
	EndIndex     int // exclusive
	VisibleItems []T
	TotalHeight  float64
	OffsetY      float64
}

// VirtualScroll computes which items intersect the container at ScrollTop,
// plus one extra row as a render buffer.
//
// A ScrollTop past the end is not clamped: StartIndex may exceed EndIndex,
// in which case VisibleItems is empty.
func VirtualScroll[T any](items []T, cfg VirtualScrollConfig) VirtualWindow[T] {
	itemHeight := cfg.ItemHeight
	if itemHeight <= 0 {
		itemHeight = DefaultItemHeight
	}
	containerHeight := cfg.ContainerHeight
	if containerHeight <= 0 {
		containerHeight = DefaultContainerHeight
	}
	scrollTop := math.Max(cfg.ScrollTop, 0)

	startIndex := int(math.Floor(scrollTop / itemHeight))
	endIndex := min(startIndex+int(math.Ceil(containerHeight/itemHeight))+1, len(items))

	visible := []T{}
	if startIndex < endIndex {
		visible = items[startIndex:endIndex]
	}

	return VirtualWindow[T]{
		StartIndex:   startIndex,
		EndIndex:     endIndex,
		VisibleItems: visible,
		TotalHeight:  float64(len(items)) * itemHeight,
		OffsetY:      float64(startIndex) * itemHeight,
	}
}
