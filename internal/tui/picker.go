package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/selectkit/internal/engine"
	"github.com/rshade/selectkit/internal/format"
	"github.com/rshade/selectkit/internal/logging"
	"github.com/rshade/selectkit/internal/searchutil"
	listview "github.com/rshade/selectkit/internal/tui/list"
)

// ErrCancelled is returned by RunPicker when the user leaves without selecting.
var ErrCancelled = errors.New("selection cancelled")

// Picker defaults.
const (
	DefaultPickerHeight     = 10
	DefaultDebounceWait     = 300 * time.Millisecond
	DefaultThrottleLimit    = 100 * time.Millisecond
	pickerDefaultWidth      = 80
	pickerQueryCharLimit    = 256
	pickerChromeRows        = 4
	selectedMarker          = "> "
	unselectedMarker        = "  "
	defaultPickerTitle      = "Select an item"
	defaultQueryPrompt      = "/ "
	defaultQueryPlaceholder = "type to search"
)

// PickerOptions configures a picker.
type PickerOptions struct {
	Title        string
	Fields       []string
	DisplayField string
	SortField    string
	SortOrder    string
	// Height is the number of list rows shown.
	Height int
	// Debounce delays re-filtering after each keystroke. Zero filters on every key.
	Debounce time.Duration
	// ThrottleLimit is the minimum interval between mouse wheel scroll steps.
	ThrottleLimit time.Duration
	// NotificationDuration is how long status messages stay visible.
	NotificationDuration time.Duration
}

// queryReadyMsg carries a debounced query back into the update loop.
type queryReadyMsg struct {
	query string
}

// PickerModel is the Bubble Tea model for interactive item selection.
type PickerModel struct {
	ctx  context.Context
	opts PickerOptions
	keys PickerKeyMap

	input textinput.Model
	list  *listview.VirtualListModel[engine.Row]

	engine *engine.Engine
	items  []searchutil.Item
	query  string

	// matched is the number of rows for the applied query
	matched int

	debouncer *searchutil.Debouncer[string]
	queryCh   chan string
	scroller  *searchutil.Throttler[int]
	notifier  *Notifier

	selected  *searchutil.Item
	cancelled bool
	width     int
}

// NewPickerModel creates a picker over items.
func NewPickerModel(ctx context.Context, eng *engine.Engine, items []searchutil.Item, opts PickerOptions) *PickerModel {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.Height <= 0 {
		opts.Height = DefaultPickerHeight
	}
	if opts.Title == "" {
		opts.Title = defaultPickerTitle
	}

	input := textinput.New()
	input.Prompt = defaultQueryPrompt
	input.Placeholder = defaultQueryPlaceholder
	input.CharLimit = pickerQueryCharLimit
	input.Focus()

	m := &PickerModel{
		ctx:      ctx,
		opts:     opts,
		keys:     DefaultPickerKeyMap(),
		input:    input,
		engine:   eng,
		items:    items,
		queryCh:  make(chan string, 1),
		notifier: NewNotifier(opts.NotificationDuration),
		width:    pickerDefaultWidth,
	}
	m.list = listview.NewVirtualListModel[engine.Row](nil, opts.Height, m.width, m.renderRow)
	m.scroller = searchutil.NewThrottler(m.list.ScrollBy, opts.ThrottleLimit)
	if opts.Debounce > 0 {
		m.debouncer = searchutil.NewDebouncer(m.deliverQuery, opts.Debounce)
	}

	m.applyQuery("")
	return m
}

// deliverQuery runs on the debounce timer goroutine. Only the newest query is kept.
func (m *PickerModel) deliverQuery(q string) {
	select {
	case <-m.queryCh:
	default:
	}
	select {
	case m.queryCh <- q:
	default:
	}
}

// waitForQuery blocks until a debounced query is ready or the context ends.
func (m *PickerModel) waitForQuery() tea.Cmd {
	return func() tea.Msg {
		select {
		case q := <-m.queryCh:
			return queryReadyMsg{query: q}
		case <-m.ctx.Done():
			return nil
		}
	}
}

// Init starts the cursor blink and the debounced query listener.
func (m *PickerModel) Init() tea.Cmd {
	if m.debouncer == nil {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, m.waitForQuery())
}

// Update handles messages and updates the model state.
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-len(defaultQueryPrompt)-1, 1)
		m.list.SetSize(msg.Width, min(m.opts.Height, max(msg.Height-pickerChromeRows, 1)))
		return m, nil

	case queryReadyMsg:
		cmd := m.applyQuery(msg.query)
		return m, tea.Batch(cmd, m.waitForQuery())

	case notificationExpiredMsg:
		m.notifier.Expire(msg)
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *PickerModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	//nolint:exhaustive // Only wheel events scroll the list.
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scroller.Call(-1)
	case tea.MouseButtonWheelDown:
		m.scroller.Call(1)
	default:
	}
	return nil
}

func (m *PickerModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		if m.debouncer != nil {
			m.debouncer.Cancel()
		}
		m.cancelled = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Select):
		return m.handleSelect()

	case key.Matches(msg, m.keys.Up):
		m.list.SetSelected(m.list.Selected() - 1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.list.SetSelected(m.list.Selected() + 1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.list.SetSelected(m.list.Selected() - m.list.Height())
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.list.SetSelected(m.list.Selected() + m.list.Height())
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.input.SetValue("")
		return m, m.queryChanged()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.queryChanged())
}

// queryChanged filters immediately or schedules a debounced filter.
func (m *PickerModel) queryChanged() tea.Cmd {
	if m.debouncer == nil {
		return m.applyQuery(m.input.Value())
	}
	m.debouncer.Call(m.input.Value())
	return nil
}

// handleSelect applies a pending query first so Enter picks from what was typed.
func (m *PickerModel) handleSelect() (tea.Model, tea.Cmd) {
	if m.debouncer != nil && m.debouncer.Cancel() {
		m.applyQuery(m.input.Value())
	}

	row := m.list.GetSelectedItem()
	if row == nil {
		return m, m.notifier.Show(NotifyWarning, "Nothing to select")
	}

	item := row.Item
	m.selected = &item
	return m, tea.Quit
}

// applyQuery re-filters the items. It returns a notification command when
// nothing matches.
func (m *PickerModel) applyQuery(q string) tea.Cmd {
	m.query = strings.TrimSpace(q)
	result := m.engine.Apply(m.items, &engine.Request{
		Query:        q,
		Fields:       m.opts.Fields,
		DisplayField: m.opts.DisplayField,
		SortField:    m.opts.SortField,
		SortOrder:    m.opts.SortOrder,
	})
	m.matched = result.Matched
	m.list.SetItems(result.Rows)
	m.list.SetSelected(0)

	logging.FromContext(m.ctx).Debug().
		Str("component", "tui").
		Str("query", m.query).
		Int("matched", result.Matched).
		Msg("picker query applied")

	if result.Matched == 0 && m.query != "" {
		return m.notifier.Show(NotifyWarning, fmt.Sprintf("No items match %q", m.query))
	}
	return nil
}

func (m *PickerModel) renderRow(row engine.Row, selected bool) string {
	text := HighlightTerminal(row.Display, m.query)
	if selected {
		return SelectedRowStyle.Render(selectedMarker + text)
	}
	return unselectedMarker + text
}

// View renders the picker.
func (m *PickerModel) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.opts.Title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if body := m.list.View(); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	b.WriteString(FooterStyle.Render(fmt.Sprintf("%s of %s items",
		format.FormatNumber(float64(m.matched), 0),
		format.FormatNumber(float64(len(m.items)), 0))))
	if status := m.notifier.View(); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
	}
	return b.String()
}

// Selected returns the chosen item, if any.
func (m *PickerModel) Selected() (searchutil.Item, bool) {
	if m.selected == nil {
		return nil, false
	}
	return *m.selected, true
}

// Cancelled reports whether the user left without selecting.
func (m *PickerModel) Cancelled() bool {
	return m.cancelled
}

// Matched returns the number of items matching the applied query.
func (m *PickerModel) Matched() int {
	return m.matched
}

// RunPicker runs an interactive picker on the terminal and returns the chosen
// item. Output goes to out so stdout stays free for the result.
func RunPicker(
	ctx context.Context,
	eng *engine.Engine,
	items []searchutil.Item,
	opts PickerOptions,
	in io.Reader,
	out io.Writer,
) (searchutil.Item, error) {
	// Ends the pending waitForQuery command once the program returns.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewPickerModel(ctx, eng, items, opts)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithMouseCellMotion(),
	)

	if _, err := program.Run(); err != nil {
		return nil, fmt.Errorf("running picker: %w", err)
	}

	item, ok := model.Selected()
	if !ok {
		return nil, ErrCancelled
	}
	return item, nil
}
