// Package badge renders small inline labels.
package badge

import (
	"github.com/charmbracelet/lipgloss"

	"copticsocial/internal/domain"
)

// Variant selects the badge colours
type Variant string

const (
	Default     Variant = "default"
	Secondary   Variant = "secondary"
	Destructive Variant = "destructive"
	Outline     Variant = "outline"
	Success     Variant = "success"
	Warning     Variant = "warning"
	Spiritual   Variant = "spiritual"

	Public     Variant = "public"
	ParishOnly Variant = "parish_only"
	Private    Variant = "private"
	InviteOnly Variant = "invite_only"

	Admin     Variant = "admin"
	Moderator Variant = "moderator"
	Member    Variant = "member"
)

type palette struct {
	fg, bg string
}

var palettes = map[Variant]palette{
	Default:     {"255", "61"},
	Secondary:   {"252", "238"},
	Destructive: {"255", "160"},
	Success:     {"232", "78"},
	Warning:     {"232", "214"},
	Spiritual:   {"232", "178"},
	Public:      {"232", "78"},
	ParishOnly:  {"255", "33"},
	Private:     {"232", "214"},
	InviteOnly:  {"255", "160"},
	Admin:       {"255", "160"},
	Moderator:   {"232", "208"},
	Member:      {"232", "250"},
}

// Render draws text as a badge of the given variant. Unknown variants
// render as Default.
func Render(v Variant, text string) string {
	if v == Outline {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Render("(" + text + ")")
	}
	p, ok := palettes[v]
	if !ok {
		p = palettes[Default]
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.fg)).
		Background(lipgloss.Color(p.bg)).
		Padding(0, 1).
		Render(text)
}

// ForPrivacy renders the badge for a group's privacy level
func ForPrivacy(p domain.Privacy) string {
	return Render(Variant(p), p.Label())
}

// ForRole renders the badge for a membership role
func ForRole(r domain.Role) string {
	return Render(Variant(r), string(r))
}
