// Package spinner wraps the bubbles spinner with the app's variants.
package spinner

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Variant selects the spinner colour
type Variant string

const (
	VariantDefault   Variant = "default"
	VariantSpiritual Variant = "spiritual"
	VariantMuted     Variant = "muted"
)

// Size selects the spinner glyph set
type Size string

const (
	SizeSmall   Size = "sm"
	SizeDefault Size = "default"
	SizeLarge   Size = "lg"
	SizeXL      Size = "xl"
)

var variantColors = map[Variant]lipgloss.Color{
	VariantDefault:   lipgloss.Color("99"),
	VariantSpiritual: lipgloss.Color("178"),
	VariantMuted:     lipgloss.Color("241"),
}

func (s Size) frames() spinner.Spinner {
	switch s {
	case SizeSmall:
		return spinner.Line
	case SizeLarge:
		return spinner.Points
	case SizeXL:
		return spinner.Globe
	default:
		return spinner.Dot
	}
}

// Model is a labelled spinner
type Model struct {
	Label string

	spinner spinner.Model
	label   lipgloss.Style
}

// New creates a spinner of the given variant and size
func New(v Variant, s Size, label string) Model {
	color, ok := variantColors[v]
	if !ok {
		color = variantColors[VariantDefault]
	}
	return Model{
		Label: label,
		spinner: spinner.New(
			spinner.WithSpinner(s.frames()),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(color)),
		),
		label: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Tick starts the animation
func (m Model) Tick() tea.Msg {
	return m.spinner.Tick()
}

// Update advances the animation on its own tick messages
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View renders the glyph followed by the label, if any
func (m Model) View() string {
	if m.Label == "" {
		return m.spinner.View()
	}
	return m.spinner.View() + " " + m.label.Render(m.Label)
}
