// Package modal implements dialogs drawn over the page.
package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Size is the width variant of the dialog
type Size string

const (
	SizeSmall   Size = "sm"
	SizeDefault Size = "default"
	SizeLarge   Size = "lg"
	SizeXL      Size = "xl"
	SizeFull    Size = "full"
)

func (s Size) width(screen int) int {
	var w int
	switch s {
	case SizeSmall:
		w = 40
	case SizeLarge:
		w = 72
	case SizeXL:
		w = 90
	case SizeFull:
		w = screen - 4
	default:
		w = 56
	}
	if screen > 0 && w > screen-4 {
		w = screen - 4
	}
	return max(w, 20)
}

// Variant controls vertical placement
type Variant string

const (
	VariantCentered Variant = "centered"
	VariantTop      Variant = "top"
)

// ClosedMsg is sent when the dialog closes itself
type ClosedMsg struct {
	ID string
}

// Model is a dialog with a title, body and footer
type Model struct {
	ID        string
	Title     string
	Body      string
	Footer    string
	ShowClose bool
	Size      Size
	Variant   Variant
	Styles    Styles

	open   bool
	width  int
	height int
}

// New creates a closed dialog
func New(id string) Model {
	return Model{
		ID:        id,
		ShowClose: true,
		Size:      SizeDefault,
		Variant:   VariantCentered,
		Styles:    DefaultStyles(),
	}
}

// Open shows the dialog
func (m *Model) Open() { m.open = true }

// Close hides the dialog
func (m *Model) Close() { m.open = false }

// IsOpen reports whether the dialog is shown
func (m Model) IsOpen() bool { return m.open }

// SetScreen records the terminal size used for placement
func (m *Model) SetScreen(width, height int) {
	m.width, m.height = width, height
}

func (m *Model) close() tea.Cmd {
	m.open = false
	id := m.ID
	return func() tea.Msg { return ClosedMsg{ID: id} }
}

// Update closes the dialog on escape or a click outside of it. Keys
// and clicks are ignored while closed.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.open {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, m.close()
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.Contains(msg.X, msg.Y) {
			return m, m.close()
		}
	}
	return m, nil
}

// View renders the dialog box
func (m Model) View() string {
	w := m.Size.width(m.width)
	inner := w - 4

	header := m.Styles.Title.Render(m.Title)
	if m.ShowClose {
		hint := m.Styles.CloseHint.Render("esc ✕")
		gap := inner - lipgloss.Width(header) - lipgloss.Width(hint)
		if gap < 1 {
			gap = 1
		}
		header += strings.Repeat(" ", gap) + hint
	}

	parts := []string{header}
	if m.Body != "" {
		parts = append(parts, "", m.Styles.Body.Width(inner).Render(m.Body))
	}
	if m.Footer != "" {
		parts = append(parts, "", m.Styles.Footer.Width(inner).Render(m.Footer))
	}
	return m.Styles.Box.Width(w - 2).Render(strings.Join(parts, "\n"))
}

// Origin returns the top-left cell of the dialog on screen
func (m Model) Origin() (int, int) {
	view := m.View()
	w, h := lipgloss.Width(view), lipgloss.Height(view)
	x := max((m.width-w)/2, 0)
	y := 2
	if m.Variant != VariantTop {
		y = max((m.height-h)/2, 0)
	}
	return x, y
}

// Contains reports whether a screen cell lies inside the dialog
func (m Model) Contains(x, y int) bool {
	ox, oy := m.Origin()
	view := m.View()
	return x >= ox && x < ox+lipgloss.Width(view) && y >= oy && y < oy+lipgloss.Height(view)
}

// Styles for dialogs
type Styles struct {
	Box       lipgloss.Style
	Title     lipgloss.Style
	CloseHint lipgloss.Style
	Body      lipgloss.Style
	Footer    lipgloss.Style
}

// DefaultStyles returns the default dialog styles
func DefaultStyles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 1),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		CloseHint: lipgloss.NewStyle().Faint(true),
		Body:      lipgloss.NewStyle(),
		Footer:    lipgloss.NewStyle().Faint(true),
	}
}
