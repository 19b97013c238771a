package listview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func render(item int, selected bool) string {
	if selected {
		return fmt.Sprintf("> %d", item)
	}
	return fmt.Sprintf("  %d", item)
}

func TestNewVirtualListModel(t *testing.T) {
	m := NewVirtualListModel(numbers(100), 5, 40, render)

	assert.Equal(t, 100, m.ItemCount())
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.VisibleFrom())
	assert.Equal(t, 5, m.VisibleTo())
	assert.Equal(t, 5, m.Height())
	assert.Equal(t, 40, m.Width())

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "> 0", lines[0])
	assert.Equal(t, "  4", lines[4])
}

func TestVirtualListModel_Navigation(t *testing.T) {
	m := NewVirtualListModel(numbers(100), 5, 40, render)

	t.Run("down past the viewport scrolls by one", func(t *testing.T) {
		for range 5 {
			m.Update(tea.KeyMsg{Type: tea.KeyDown})
		}
		assert.Equal(t, 5, m.Selected())
		assert.Equal(t, 1, m.ScrollTop())
		assert.Equal(t, 1, m.VisibleFrom())
		assert.Equal(t, 6, m.VisibleTo())
	})

	t.Run("up inside the viewport does not scroll", func(t *testing.T) {
		m.Update(tea.KeyMsg{Type: tea.KeyUp})
		assert.Equal(t, 4, m.Selected())
		assert.Equal(t, 1, m.ScrollTop())
	})

	t.Run("end and home", func(t *testing.T) {
		m.Update(tea.KeyMsg{Type: tea.KeyEnd})
		assert.Equal(t, 99, m.Selected())
		assert.Equal(t, 95, m.ScrollTop())

		m.Update(tea.KeyMsg{Type: tea.KeyHome})
		assert.Equal(t, 0, m.Selected())
		assert.Equal(t, 0, m.ScrollTop())
	})

	t.Run("page down is capped", func(t *testing.T) {
		m.SetSelected(97)
		m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
		assert.Equal(t, 99, m.Selected())
	})

	t.Run("vim keys", func(t *testing.T) {
		m.SetSelected(10)
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
		assert.Equal(t, 9, m.Selected())
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
		assert.Equal(t, 10, m.Selected())
	})
}

func TestVirtualListModel_ScrollBy(t *testing.T) {
	m := NewVirtualListModel(numbers(20), 5, 40, render)

	m.ScrollBy(3)
	assert.Equal(t, 3, m.ScrollTop())
	assert.Equal(t, 3, m.Selected(), "selection follows the top edge")

	m.ScrollBy(100)
	assert.Equal(t, 15, m.ScrollTop())

	m.ScrollBy(-100)
	assert.Equal(t, 0, m.ScrollTop())
	assert.Equal(t, 4, m.Selected(), "selection follows the bottom edge")
}

func TestVirtualListModel_SetItems(t *testing.T) {
	m := NewVirtualListModel(numbers(50), 5, 40, render)
	m.SetSelected(40)

	m.SetItems(numbers(3))
	assert.Equal(t, 2, m.Selected())
	assert.Equal(t, 0, m.ScrollTop())
	assert.Len(t, strings.Split(m.View(), "\n"), 3)

	m.SetItems(nil)
	assert.Empty(t, m.View())
	assert.Nil(t, m.GetSelectedItem())
}

func TestVirtualListModel_Resize(t *testing.T) {
	m := NewVirtualListModel(numbers(50), 10, 40, render)
	m.SetSelected(9)
	assert.Equal(t, 0, m.ScrollTop())

	m.Update(tea.WindowSizeMsg{Width: 60, Height: 4})
	assert.Equal(t, 60, m.Width())
	assert.Equal(t, 4, m.Height())
	assert.Equal(t, 6, m.ScrollTop(), "selection stays visible")
}

func TestVirtualListModel_GetSelectedItem(t *testing.T) {
	m := NewVirtualListModel([]string{"a", "b"}, 5, 10, func(s string, _ bool) string { return s })
	m.SetSelected(1)
	got := m.GetSelectedItem()
	require.NotNil(t, got)
	assert.Equal(t, "b", *got)
}
