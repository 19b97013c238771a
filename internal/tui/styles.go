package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/selectkit/internal/searchutil"
)

// Palette shared by the picker views.
var (
	ColorHeader    = lipgloss.Color("39")  //nolint:gochecknoglobals // Palette.
	ColorLabel     = lipgloss.Color("246") //nolint:gochecknoglobals // Palette.
	ColorMuted     = lipgloss.Color("240") //nolint:gochecknoglobals // Palette.
	ColorHighlight = lipgloss.Color("220") //nolint:gochecknoglobals // Palette.
	ColorSelected  = lipgloss.Color("57")  //nolint:gochecknoglobals // Palette.
	ColorOK        = lipgloss.Color("42")  //nolint:gochecknoglobals // Palette.
	ColorWarning   = lipgloss.Color("214") //nolint:gochecknoglobals // Palette.
	ColorError     = lipgloss.Color("196") //nolint:gochecknoglobals // Palette.
)

// Styles used by the picker.
var (
	TitleStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals // Style.
			Foreground(ColorHeader).
			Bold(true)

	MatchStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals // Style.
			Foreground(lipgloss.Color("0")).
			Background(ColorHighlight)

	SelectedRowStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals // Style.
				Foreground(lipgloss.Color("229")).
				Background(ColorSelected)

	FooterStyle = lipgloss.NewStyle(). //nolint:gochecknoglobals // Style.
			Foreground(ColorMuted)
)

// HighlightTerminal styles every case-insensitive occurrence of query in text.
func HighlightTerminal(text, query string) string {
	return searchutil.HighlightFunc(text, query, func(s string) string { return MatchStyle.Render(s) })
}
