package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/selectkit/internal/searchutil"
)

// rowHeight is the height of one list row in terminal lines.
const rowHeight = 1

// RenderFunc is a function that renders an item at a given index.
// The selected parameter indicates whether this item is currently selected.
type RenderFunc[T any] func(item T, selected bool) string

// VirtualListModel renders only the rows that intersect the viewport, using
// searchutil.VirtualScroll with one terminal line per row. The selection is
// kept in view with nearest-edge scrolling.
type VirtualListModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	selected  int
	scrollTop int

	// window is the last computed visible range
	window searchutil.VirtualWindow[T]

	height int
	width  int
}

// NewVirtualListModel creates a new virtual list model.
func NewVirtualListModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *VirtualListModel[T] {
	m := &VirtualListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     max(height, 1),
		width:      width,
	}
	m.updateWindow()
	return m
}

// Init initializes the model (required for tea.Model interface).
func (m *VirtualListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and resize messages.
func (m *VirtualListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg), nil
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}
	return m, nil
}

// handleKeyMsg processes keyboard input for navigation.
//
//nolint:exhaustive // Only navigation keys are handled.
func (m *VirtualListModel[T]) handleKeyMsg(msg tea.KeyMsg) tea.Model {
	if len(m.items) == 0 {
		return m
	}

	switch msg.Type {
	case tea.KeyUp:
		m.SetSelected(m.selected - 1)
	case tea.KeyDown:
		m.SetSelected(m.selected + 1)
	case tea.KeyPgUp:
		m.SetSelected(m.selected - m.height)
	case tea.KeyPgDown:
		m.SetSelected(m.selected + m.height)
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		if len(msg.Runes) > 0 {
			switch msg.Runes[0] {
			case 'j':
				m.SetSelected(m.selected + 1)
			case 'k':
				m.SetSelected(m.selected - 1)
			}
		}
	default:
	}
	return m
}

// SetItems replaces the list contents, keeping the selection index in range
// and resetting the scroll position when the list shrinks below it.
func (m *VirtualListModel[T]) SetItems(items []T) {
	m.items = items
	m.scrollTop = min(m.scrollTop, m.maxScrollTop())
	m.SetSelected(m.selected)
}

// SetSize changes the viewport dimensions.
func (m *VirtualListModel[T]) SetSize(width, height int) {
	m.width = width
	m.height = max(height, 1)
	m.scrollTop = min(m.scrollTop, m.maxScrollTop())
	m.scrollSelectedIntoView()
}

// ScrollBy moves the viewport by delta rows without changing the selection
// unless it would leave the viewport.
func (m *VirtualListModel[T]) ScrollBy(delta int) {
	m.scrollTop = min(max(m.scrollTop+delta, 0), m.maxScrollTop())
	m.updateWindow()

	if len(m.items) == 0 {
		return
	}
	switch {
	case m.selected < m.scrollTop:
		m.selected = m.scrollTop
	case m.selected >= m.scrollTop+m.height:
		m.selected = m.scrollTop + m.height - 1
	}
}

func (m *VirtualListModel[T]) maxScrollTop() int {
	return max(len(m.items)-m.height, 0)
}

func (m *VirtualListModel[T]) updateWindow() {
	m.window = searchutil.VirtualScroll(m.items, searchutil.VirtualScrollConfig{
		ItemHeight:      rowHeight,
		ContainerHeight: float64(m.height),
		ScrollTop:       float64(m.scrollTop),
	})
}

func (m *VirtualListModel[T]) scrollSelectedIntoView() {
	if len(m.items) == 0 {
		m.updateWindow()
		return
	}
	row := m.rowElement(m.selected)
	if !searchutil.IsInViewport(row, m) {
		searchutil.ScrollIntoView(row, false)
	}
	m.updateWindow()
}

// View renders the rows in the viewport.
func (m *VirtualListModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	visible := m.window.VisibleItems
	if len(visible) > m.height {
		visible = visible[:m.height]
	}

	var sb strings.Builder
	for i, item := range visible {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.renderFunc(item, m.window.StartIndex+i == m.selected))
	}
	return sb.String()
}

// Size implements searchutil.Viewport.
func (m *VirtualListModel[T]) Size() (float64, float64) {
	return float64(m.width), float64(m.height)
}

// ItemCount returns the total number of items in the list.
func (m *VirtualListModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the currently selected item index.
func (m *VirtualListModel[T]) Selected() int {
	return m.selected
}

// SetSelected sets the selected item index, capping to valid bounds, and
// scrolls it into view.
func (m *VirtualListModel[T]) SetSelected(index int) {
	if len(m.items) == 0 {
		m.selected = 0
		m.scrollTop = 0
		m.updateWindow()
		return
	}
	m.selected = min(max(index, 0), len(m.items)-1)
	m.scrollSelectedIntoView()
}

// ScrollTop returns the index of the first row in the viewport.
func (m *VirtualListModel[T]) ScrollTop() int {
	return m.scrollTop
}

// VisibleFrom returns the first visible item index (inclusive).
func (m *VirtualListModel[T]) VisibleFrom() int {
	return m.window.StartIndex
}

// VisibleTo returns the last visible item index (exclusive).
func (m *VirtualListModel[T]) VisibleTo() int {
	return min(m.window.EndIndex, m.window.StartIndex+m.height)
}

// Height returns the viewport height.
func (m *VirtualListModel[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *VirtualListModel[T]) Width() int {
	return m.width
}

// GetSelectedItem returns the currently selected item.
// Returns nil if list is empty.
func (m *VirtualListModel[T]) GetSelectedItem() *T {
	if len(m.items) == 0 || m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}

// rowElement adapts one row to searchutil.Element so selection tracking uses
// the same nearest-edge rule as the browser.
type rowElement[T any] struct {
	list  *VirtualListModel[T]
	index int
}

func (m *VirtualListModel[T]) rowElement(index int) rowElement[T] {
	return rowElement[T]{list: m, index: index}
}

// BoundingRect implements searchutil.Element.
func (r rowElement[T]) BoundingRect() searchutil.Rect {
	top := float64(r.index - r.list.scrollTop)
	return searchutil.Rect{
		Top:    top,
		Left:   0,
		Bottom: top + rowHeight,
		Right:  float64(r.list.width),
	}
}

// ScrollIntoView implements searchutil.Element with nearest alignment.
func (r rowElement[T]) ScrollIntoView(_ searchutil.ScrollOptions) {
	l := r.list
	switch {
	case r.index < l.scrollTop:
		l.scrollTop = r.index
	case r.index >= l.scrollTop+l.height:
		l.scrollTop = r.index - l.height + 1
	}
}
