// Package navigation renders the top bar with brand, tabs and user avatar.
package navigation

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"copticsocial/internal/ui/components/avatar"
	"copticsocial/internal/ui/components/badge"
)

// Item is a navigation entry
type Item struct {
	Key   string
	Label string
	Icon  string
	// Count is shown as a badge when positive
	Count int
}

// Model is the navigation bar
type Model struct {
	Brand string
	User  string

	items        []Item
	active       string
	width        int
	compactWidth int
	menuOpen     bool

	styles styles
}

type styles struct {
	brand    lipgloss.Style
	item     lipgloss.Style
	active   lipgloss.Style
	bar      lipgloss.Style
	menuItem lipgloss.Style
}

// New creates a navigation bar. Below compactWidth columns the items
// collapse into a toggleable menu.
func New(brand string, items []Item, compactWidth int) Model {
	m := Model{
		Brand:        brand,
		items:        append([]Item(nil), items...),
		compactWidth: compactWidth,
		styles: styles{
			brand:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("178")),
			item:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
			active:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 1),
			bar:      lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("238")),
			menuItem: lipgloss.NewStyle().PaddingLeft(2),
		},
	}
	if len(items) > 0 {
		m.active = items[0].Key
	}
	return m
}

// Items returns the entries
func (m Model) Items() []Item { return m.items }

// Active returns the key of the active entry
func (m Model) Active() string { return m.active }

// SetActive marks key as active and closes the compact menu
func (m *Model) SetActive(key string) {
	for _, it := range m.items {
		if it.Key == key {
			m.active = key
			m.menuOpen = false
			return
		}
	}
}

// SetCount updates the count badge of an entry
func (m *Model) SetCount(key string, n int) {
	for i := range m.items {
		if m.items[i].Key == key {
			m.items[i].Count = n
		}
	}
}

// Next activates the entry after the active one, wrapping around
func (m *Model) Next() string {
	for i, it := range m.items {
		if it.Key == m.active {
			m.SetActive(m.items[(i+1)%len(m.items)].Key)
			break
		}
	}
	return m.active
}

// SetWidth records the terminal width
func (m *Model) SetWidth(w int) {
	m.width = w
	if !m.Compact() {
		m.menuOpen = false
	}
}

// Compact reports whether the bar is in its narrow layout
func (m Model) Compact() bool {
	return m.width > 0 && m.width < m.compactWidth
}

// ToggleMenu opens or closes the compact menu. It has no effect in the
// wide layout.
func (m *Model) ToggleMenu() {
	if m.Compact() {
		m.menuOpen = !m.menuOpen
	}
}

// MenuOpen reports whether the compact menu is expanded
func (m Model) MenuOpen() bool { return m.menuOpen }

func (m Model) label(it Item) string {
	s := it.Label
	if it.Icon != "" {
		s = it.Icon + " " + s
	}
	if it.Count > 0 {
		s += " " + badge.Render(badge.Secondary, fmt.Sprint(it.Count))
	}
	return s
}

// View renders the bar
func (m Model) View() string {
	brand := m.styles.brand.Render("✝ " + m.Brand)
	user := ""
	if m.User != "" {
		user = avatar.Render(m.User, avatar.SizeDefault)
	}

	var left string
	if m.Compact() {
		toggle := "☰"
		if m.menuOpen {
			toggle = "✕"
		}
		left = brand + "  " + toggle
	} else {
		parts := []string{brand, " "}
		for _, it := range m.items {
			style := m.styles.item
			if it.Key == m.active {
				style = m.styles.active
			}
			parts = append(parts, style.Render(m.label(it)))
		}
		left = lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(user)
	if gap < 1 {
		gap = 1
	}
	bar := m.styles.bar.Render(left + strings.Repeat(" ", gap) + user)
	if !m.menuOpen {
		return bar
	}

	lines := []string{bar}
	for _, it := range m.items {
		marker := "  "
		style := m.styles.item
		if it.Key == m.active {
			marker = "▸ "
			style = m.styles.active
		}
		lines = append(lines, m.styles.menuItem.Render(marker+style.Render(m.label(it))))
	}
	return strings.Join(lines, "\n")
}
