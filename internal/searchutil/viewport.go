package searchutil

// Rect is a bounding box relative to the viewport's top-left corner.
type Rect struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// ScrollBehavior selects animated or instant scrolling.
type ScrollBehavior string

// Scroll behaviors.
const (
	ScrollSmooth ScrollBehavior = "smooth"
	ScrollAuto   ScrollBehavior = "auto"
)

// ScrollAlignment says where the element should land in its container.
type ScrollAlignment string

// AlignNearest scrolls the least distance that makes the element visible.
const AlignNearest ScrollAlignment = "nearest"

// ScrollOptions are passed to Element.ScrollIntoView.
type ScrollOptions struct {
	Behavior ScrollBehavior
	Block    ScrollAlignment
	Inline   ScrollAlignment
}

// Element is a rendered node that can report its box and be scrolled to.
type Element interface {
	BoundingRect() Rect
	ScrollIntoView(opts ScrollOptions)
}

// Viewport reports the visible area's size.
type Viewport interface {
	Size() (width, height float64)
}

// ScrollIntoView scrolls el to the nearest visible position. A nil element is ignored.
func ScrollIntoView(el Element, smooth bool) {
	if el == nil {
		return
	}
	behavior := ScrollAuto
	if smooth {
		behavior = ScrollSmooth
	}
	el.ScrollIntoView(ScrollOptions{
		Behavior: behavior,
		Block:    AlignNearest,
		Inline:   AlignNearest,
	})
}

// IsInViewport reports whether el's box lies fully inside vp.
func IsInViewport(el Element, vp Viewport) bool {
	if el == nil || vp == nil {
		return false
	}
	rect := el.BoundingRect()
	width, height := vp.Size()
	return rect.Top >= 0 &&
		rect.Left >= 0 &&
		rect.Bottom <= height &&
		rect.Right <= width
}
