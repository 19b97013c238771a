package searchutil

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightMatch(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		class string
		want  string
	}{
		{
			name:  "case insensitive keeps original casing",
			text:  "Fiber Laser",
			query: "laser",
			class: "hl",
			want:  `Fiber <span class="hl">Laser</span>`,
		},
		{
			name:  "dot is literal",
			text:  "3.5 price",
			query: ".",
			class: "hl",
			want:  `3<span class="hl">.</span>5 price`,
		},
		{
			name:  "all matches replaced",
			text:  "a.b.c",
			query: ".",
			class: "hl",
			want:  `a<span class="hl">.</span>b<span class="hl">.</span>c`,
		},
		{
			name:  "non-overlapping leftmost first",
			text:  "aaaa",
			query: "aa",
			class: "x",
			want:  `<span class="x">aa</span><span class="x">aa</span>`,
		},
		{
			name:  "special characters",
			text:  "price (USD) [net] $5+tax",
			query: "(usd) [net] $5+",
			class: "x",
			want:  `price <span class="x">(USD) [net] $5+</span>tax`,
		},
		{
			name:  "empty query",
			text:  "Fiber Laser",
			query: "",
			class: "hl",
			want:  "Fiber Laser",
		},
		{
			name:  "empty text",
			text:  "",
			query: "x",
			class: "hl",
			want:  "",
		},
		{
			name:  "default class",
			text:  "Laser",
			query: "LASER",
			class: "",
			want:  `<span class="bg-yellow-200">Laser</span>`,
		},
		{
			name:  "no match",
			text:  "Cutter",
			query: "laser",
			class: "hl",
			want:  "Cutter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HighlightMatch(tt.text, tt.query, tt.class))
		})
	}
}

func TestHighlightFunc(t *testing.T) {
	got := HighlightFunc("Laser laser", "LASER", strings.ToUpper)
	assert.Equal(t, "LASER LASER", got)
}

func TestEscapeRegExp(t *testing.T) {
	special := `.*+?^${}()|[]\`
	escaped := EscapeRegExp(special)
	for _, r := range special {
		assert.Contains(t, escaped, `\`+string(r))
	}

	re := regexp.MustCompile(escaped)
	assert.True(t, re.MatchString("prefix "+special+" suffix"))
	assert.False(t, re.MatchString("abcdef"))
}

func TestFilterByFields(t *testing.T) {
	items := []Item{
		{"name": "A", "code": "1"},
		{"name": "B", "code": "2"},
	}

	t.Run("matches code field", func(t *testing.T) {
		got := FilterByFields(items, "1", []string{"code"})
		assert.Equal(t, []Item{{"name": "A", "code": "1"}}, got)
	})

	t.Run("empty query returns input", func(t *testing.T) {
		got := FilterByFields(items, "", []string{"name"})
		require.Len(t, got, len(items))
		assert.Same(t, &items[0], &got[0])
	})

	t.Run("whitespace query returns input", func(t *testing.T) {
		got := FilterByFields(items, "   ", []string{"name"})
		assert.Same(t, &items[0], &got[0])
	})

	t.Run("query trimmed and case insensitive", func(t *testing.T) {
		got := FilterByFields(items, "  b ", []string{"name"})
		assert.Equal(t, []Item{{"name": "B", "code": "2"}}, got)
	})

	t.Run("any field matches", func(t *testing.T) {
		got := FilterByFields(items, "2", []string{"name", "code"})
		assert.Len(t, got, 1)
	})

	t.Run("nil and absent never match", func(t *testing.T) {
		withNil := []Item{{"name": nil}, {"other": "null"}}
		assert.Empty(t, FilterByFields(withNil, "nil", []string{"name"}))
		assert.Empty(t, FilterByFields(withNil, "null", []string{"name"}))
	})

	t.Run("numbers are stringified", func(t *testing.T) {
		numeric := []Item{
			{"name": "widget", "price": 1250.0},
			{"name": "gadget", "price": 99.5},
			{"name": "gizmo", "qty": 42},
		}
		assert.Len(t, FilterByFields(numeric, "125", []string{"price"}), 1)
		assert.Empty(t, FilterByFields(numeric, "1250.0", []string{"price"}))
		assert.Len(t, FilterByFields(numeric, "9.5", []string{"price"}), 1)
		assert.Len(t, FilterByFields(numeric, "42", []string{"qty"}), 1)
	})

	t.Run("no match returns empty", func(t *testing.T) {
		got := FilterByFields(items, "zzz", []string{"name", "code"})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestToString(t *testing.T) {
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "true", ToString(true))
	assert.Equal(t, "1", ToString(1.0))
	assert.Equal(t, "3.5", ToString(3.5))
	assert.Equal(t, "-7", ToString(int64(-7)))
	assert.Equal(t, "12", ToString(uint(12)))
}

func makeRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestVirtualScroll(t *testing.T) {
	t.Run("scrolled window", func(t *testing.T) {
		items := makeRange(200)
		w := VirtualScroll(items, VirtualScrollConfig{ItemHeight: 40, ContainerHeight: 300, ScrollTop: 400})

		assert.Equal(t, 10, w.StartIndex)
		assert.Equal(t, 19, w.EndIndex)
		assert.InDelta(t, 400.0, w.OffsetY, 0)
		assert.InDelta(t, 8000.0, w.TotalHeight, 0)
		assert.Equal(t, items[10:19], w.VisibleItems)
	})

	t.Run("empty items", func(t *testing.T) {
		w := VirtualScroll([]int{}, VirtualScrollConfig{ItemHeight: 40, ContainerHeight: 300})
		assert.Equal(t, 0, w.StartIndex)
		assert.Equal(t, 0, w.EndIndex)
		assert.Empty(t, w.VisibleItems)
		assert.NotNil(t, w.VisibleItems)
		assert.Zero(t, w.TotalHeight)
	})

	t.Run("defaults", func(t *testing.T) {
		w := VirtualScroll(makeRange(100), VirtualScrollConfig{})
		assert.Equal(t, 0, w.StartIndex)
		// ceil(300/40) = 8, plus one buffer row.
		assert.Equal(t, 9, w.EndIndex)
		assert.InDelta(t, 4000.0, w.TotalHeight, 0)
	})

	t.Run("end capped at length", func(t *testing.T) {
		w := VirtualScroll(makeRange(12), VirtualScrollConfig{ItemHeight: 40, ContainerHeight: 300, ScrollTop: 200})
		assert.Equal(t, 5, w.StartIndex)
		assert.Equal(t, 12, w.EndIndex)
		assert.Len(t, w.VisibleItems, 7)
	})

	t.Run("scroll beyond total is not clamped", func(t *testing.T) {
		w := VirtualScroll(makeRange(5), VirtualScrollConfig{ItemHeight: 40, ContainerHeight: 300, ScrollTop: 4000})
		assert.Equal(t, 100, w.StartIndex)
		assert.Equal(t, 5, w.EndIndex)
		assert.Empty(t, w.VisibleItems)
	})

	t.Run("fractional scroll", func(t *testing.T) {
		w := VirtualScroll(makeRange(50), VirtualScrollConfig{ItemHeight: 40, ContainerHeight: 300, ScrollTop: 79.5})
		assert.Equal(t, 1, w.StartIndex)
		assert.InDelta(t, 40.0, w.OffsetY, 0)
	})

	t.Run("order preserved", func(t *testing.T) {
		items := []string{"a", "b", "c", "d"}
		w := VirtualScroll(items, VirtualScrollConfig{ItemHeight: 1, ContainerHeight: 2, ScrollTop: 1})
		assert.Equal(t, []string{"b", "c", "d"}, w.VisibleItems)
	})
}

func TestGetDisplayText(t *testing.T) {
	item := Item{"name": "Fiber Laser", "code": "FL-1", "title": ""}

	assert.Equal(t, "FL-1", GetDisplayText(item, "code", ""))
	assert.Equal(t, "Fiber Laser", GetDisplayText(item, "title", ""))
	assert.Equal(t, "Fiber Laser", GetDisplayText(item, "missing", "name"))
	assert.Equal(t, "FL-1", GetDisplayText(item, "missing", "code"))
	assert.Equal(t, "", GetDisplayText(item, "missing", "other"))
	assert.Equal(t, "", GetDisplayText(nil, "name", ""))
}

func TestGetDisplayText_ZeroNumbersFallBack(t *testing.T) {
	tests := []struct {
		name string
		zero any
	}{
		{"int", 0},
		{"int32", int32(0)},
		{"int64", int64(0)},
		{"uint", uint(0)},
		{"uint64", uint64(0)},
		{"float32", float32(0)},
		{"float64", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Item{"name": "Cutter", "code": tt.zero}
			assert.Equal(t, "Cutter", GetDisplayText(item, "code", ""))
			assert.Equal(t, "Cutter", FormatDisplay(Item{"id": tt.zero, "label": "Cutter"}, nil))
			assert.Equal(t, "", FormatDisplay(Item{"id": tt.zero}, nil))
		})
	}

	assert.Equal(t, "3", GetDisplayText(Item{"code": uint(3)}, "code", ""))
	assert.Equal(t, "1.5", GetDisplayText(Item{"code": float32(1.5)}, "code", ""))
}

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		name      string
		item      Item
		formatter Formatter
		want      string
	}{
		{"field formatter", Item{"code": "C-9", "name": "x"}, FieldFormatter("code"), "C-9"},
		{"field formatter missing", Item{"name": "x"}, FieldFormatter("code"), ""},
		{
			"func formatter",
			Item{"code": "C-9", "name": "Cutter"},
			FormatterFunc(func(it Item) string { return fmt.Sprintf("%s (%s)", it["name"], it["code"]) }),
			"Cutter (C-9)",
		},
		{"default name", Item{"name": "Cutter", "label": "L"}, nil, "Cutter"},
		{"default label", Item{"label": "L", "id": 7}, nil, "L"},
		{"default id", Item{"id": 7.0}, nil, "7"},
		{"default empty", Item{}, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDisplay(tt.item, tt.formatter))
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		item := Item{"name": "Cutter"}
		first := FormatDisplay(item, FieldFormatter("name"))
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, FormatDisplay(item, FieldFormatter("name")))
		}
	})
}

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		assert.True(t, strings.HasPrefix(id, IDPrefix))
		assert.Len(t, id, len(IDPrefix)+10)
		assert.Equal(t, strings.ToLower(id), id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	sortable := GenerateSortableID()
	assert.Len(t, sortable, 26)
}

func TestGenerateID_UniqueWithinBursts(t *testing.T) {
	for burst := 0; burst < 20; burst++ {
		seen := make(map[string]struct{}, 1000)
		for i := 0; i < 1000; i++ {
			id := GenerateID()
			_, dup := seen[id]
			require.False(t, dup, "duplicate id %s in burst %d", id, burst)
			seen[id] = struct{}{}
		}
	}
}

func TestSafeJSONParse(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { SetLogger(zerolog.Nop()) })

	fallback := map[string]any{"fallback": true}

	got := SafeJSONParse("{bad json", fallback)
	assert.Equal(t, fallback, got)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"component":"searchutil"`)

	parsed := SafeJSONParse(`{"name":"Cutter","qty":2}`, fallback)
	assert.Equal(t, map[string]any{"name": "Cutter", "qty": 2.0}, parsed)

	assert.Equal(t, 5, SafeJSONParse("5", 0))
	assert.Equal(t, -1, SafeJSONParse("", -1))
	assert.Equal(t, []string{"a"}, SafeJSONParse(`["a"]`, []string(nil)))
}

type fakeElement struct {
	rect     Rect
	scrolled []ScrollOptions
}

func (e *fakeElement) BoundingRect() Rect { return e.rect }

func (e *fakeElement) ScrollIntoView(opts ScrollOptions) {
	e.scrolled = append(e.scrolled, opts)
}

type fakeViewport struct{ w, h float64 }

func (v fakeViewport) Size() (float64, float64) { return v.w, v.h }

func TestScrollIntoView(t *testing.T) {
	el := &fakeElement{}
	ScrollIntoView(el, true)
	ScrollIntoView(el, false)
	ScrollIntoView(nil, true)

	require.Len(t, el.scrolled, 2)
	assert.Equal(t, ScrollOptions{Behavior: ScrollSmooth, Block: AlignNearest, Inline: AlignNearest}, el.scrolled[0])
	assert.Equal(t, ScrollAuto, el.scrolled[1].Behavior)
}

func TestIsInViewport(t *testing.T) {
	vp := fakeViewport{w: 800, h: 600}
	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"inside", Rect{Top: 10, Left: 10, Bottom: 50, Right: 200}, true},
		{"exact edges", Rect{Top: 0, Left: 0, Bottom: 600, Right: 800}, true},
		{"above", Rect{Top: -1, Left: 0, Bottom: 20, Right: 20}, false},
		{"left", Rect{Top: 0, Left: -5, Bottom: 20, Right: 20}, false},
		{"below", Rect{Top: 590, Left: 0, Bottom: 610, Right: 20}, false},
		{"right", Rect{Top: 0, Left: 790, Bottom: 20, Right: 810}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInViewport(&fakeElement{rect: tt.rect}, vp))
		})
	}

	assert.False(t, IsInViewport(nil, vp))
}
