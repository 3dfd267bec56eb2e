package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Tagline      lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Filter       lipgloss.Style
	FilterActive lipgloss.Style
	Help         lipgloss.Style
	Highlight    lipgloss.Style

	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardMeta     lipgloss.Style
	Action       lipgloss.Style
	ActionLeave  lipgloss.Style
	Skeleton     lipgloss.Style

	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("178")),
		Tagline:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Italic(true),
		Dim:          lipgloss.NewStyle().Faint(true),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FilterActive: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Help:         lipgloss.NewStyle().Faint(true),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		CardTitle:   lipgloss.NewStyle().Bold(true),
		CardMeta:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Action:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		ActionLeave: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Skeleton:    lipgloss.NewStyle().Foreground(lipgloss.Color("237")),

		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
