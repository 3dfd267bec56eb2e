// Package input wraps bubbles/textinput with bordered variants.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Variant selects the border colour
type Variant string

const (
	VariantDefault   Variant = "default"
	VariantSpiritual Variant = "spiritual"
	VariantError     Variant = "error"
	VariantSuccess   Variant = "success"
)

// Size selects the horizontal padding
type Size string

const (
	SizeSmall   Size = "sm"
	SizeDefault Size = "default"
	SizeLarge   Size = "lg"
)

var borderColors = map[Variant]lipgloss.Color{
	VariantDefault:   lipgloss.Color("99"),
	VariantSpiritual: lipgloss.Color("178"),
	VariantError:     lipgloss.Color("203"),
	VariantSuccess:   lipgloss.Color("78"),
}

// Model is a bordered text field
type Model struct {
	textinput.Model
	Variant Variant
	Size    Size
}

// New creates an unfocused field
func New(placeholder string, v Variant, s Size) Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 500
	return Model{Model: ti, Variant: v, Size: s}
}

// Update forwards messages to the text input
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Model, cmd = m.Model.Update(msg)
	return m, cmd
}

func (m Model) padding() int {
	switch m.Size {
	case SizeSmall:
		return 0
	case SizeLarge:
		return 2
	default:
		return 1
	}
}

// View renders the field inside its border. Unfocused fields use a
// muted border unless they show an error or success state.
func (m Model) View() string {
	color, ok := borderColors[m.Variant]
	if !ok {
		color = borderColors[VariantDefault]
	}
	if !m.Focused() && (m.Variant == VariantDefault || m.Variant == VariantSpiritual || m.Variant == "") {
		color = lipgloss.Color("241")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, m.padding()).
		Render(m.Model.View())
}
