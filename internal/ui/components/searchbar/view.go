package searchbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	searchGlyph = "🔍"
	clearGlyph  = "✕"

	// rendered height of the bordered input line
	inputHeight = 3
)

// Styles for the search bar
type Styles struct {
	Input       lipgloss.Style
	InputFocus  lipgloss.Style
	Glyph       lipgloss.Style
	Clear       lipgloss.Style
	Spinner     lipgloss.Style
	Dropdown    lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Type        lipgloss.Style
	Empty       lipgloss.Style
}

// DefaultStyles returns the default search bar styles
func DefaultStyles() Styles {
	return Styles{
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Glyph:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Clear:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),
		Row:         lipgloss.NewStyle(),
		SelectedRow: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Title:       lipgloss.NewStyle().Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Type:        lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		Empty:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true).Padding(0, 1),
	}
}

// View renders the input and, when open, the dropdown below it
func (m Model) View() string {
	if !m.open {
		return m.InputView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.InputView(), m.DropdownView())
}

func (m Model) innerWidth() int {
	return m.width - 4
}

func (m Model) showClear() bool {
	return m.opts.ShowClearButton && !m.loading && m.input.Value() != ""
}

// InputView renders the bordered input line
func (m Model) InputView() string {
	left := m.Styles.Glyph.Render(searchGlyph) + " " + m.input.View()

	right := ""
	switch {
	case m.loading:
		right = m.spinner.View()
	case m.showClear():
		right = m.Styles.Clear.Render(clearGlyph)
	}

	inner := m.innerWidth()
	left = ansi.Truncate(left, inner-ansi.StringWidth(right)-1, "")
	pad := inner - ansi.StringWidth(left) - ansi.StringWidth(right)
	if pad < 0 {
		pad = 0
	}
	line := left + strings.Repeat(" ", pad) + right

	style := m.Styles.Input
	if m.input.Focused() {
		style = m.Styles.InputFocus
	}
	return style.Width(m.width - 2).Render(line)
}

// DropdownView renders the result list or its empty and loading states
func (m Model) DropdownView() string {
	inner := m.width - 2
	var lines []string

	switch {
	case len(m.results) == 0 && m.loading:
		lines = append(lines, m.Styles.Empty.Render(m.spinner.View()+" Searching..."))
	case len(m.results) == 0:
		lines = append(lines, m.Styles.Empty.Render(fmt.Sprintf("No results found for \"%s\"", m.TrimmedQuery())))
	default:
		for i, r := range m.results {
			lines = append(lines, m.renderRow(r, i == m.selected, inner))
		}
	}

	return m.Styles.Dropdown.Width(inner).Render(strings.Join(lines, "\n"))
}

func (m Model) renderRow(r Result, selected bool, width int) string {
	icon := r.Icon
	if icon == "" {
		icon = "•"
	}
	left := " " + icon + " " + m.Styles.Title.Render(r.Title)
	if r.Subtitle != "" {
		left += " " + m.Styles.Subtitle.Render(r.Subtitle)
	}
	right := ""
	if r.Type != "" {
		right = m.Styles.Type.Render(r.Type) + " "
	}

	left = ansi.Truncate(left, width-ansi.StringWidth(right)-1, "…")
	pad := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if pad < 0 {
		pad = 0
	}
	row := left + strings.Repeat(" ", pad) + right

	style := m.Styles.Row
	if selected {
		style = m.Styles.SelectedRow
	}
	return style.Width(width).Render(row)
}

// Hit testing. Coordinates are absolute screen cells; SetOrigin tells the
// control where its top-left corner is drawn.

func (m Model) inColumns(x int) bool {
	return x >= m.originX && x < m.originX+m.width
}

func (m Model) inInput(x, y int) bool {
	return m.inColumns(x) && y >= m.originY && y < m.originY+inputHeight
}

func (m Model) inClearZone(x, y int) bool {
	if !m.showClear() {
		return false
	}
	right := m.originX + m.width - 1
	return y == m.originY+1 && x >= right-3 && x < right
}

func (m Model) dropdownTop() int {
	return m.originY + inputHeight
}

func (m Model) inDropdown(x, y int) bool {
	if !m.open {
		return false
	}
	h := lipgloss.Height(m.DropdownView())
	return m.inColumns(x) && y >= m.dropdownTop() && y < m.dropdownTop()+h
}

// rowAt maps a screen position to a result index
func (m Model) rowAt(x, y int) (int, bool) {
	if !m.open || len(m.results) == 0 || !m.inColumns(x) {
		return 0, false
	}
	row := y - m.dropdownTop() - 1
	if row < 0 || row >= len(m.results) {
		return 0, false
	}
	return row, true
}
