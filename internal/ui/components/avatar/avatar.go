// Package avatar renders a user's initials as a coloured block.
package avatar

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// Size is the avatar size variant
type Size string

const (
	SizeSmall   Size = "sm"
	SizeDefault Size = "default"
	SizeLarge   Size = "lg"
	SizeXL      Size = "xl"
	Size2XL     Size = "2xl"
)

func (s Size) padding() (int, int) {
	switch s {
	case SizeSmall:
		return 0, 0
	case SizeLarge:
		return 0, 2
	case SizeXL:
		return 1, 2
	case Size2XL:
		return 1, 3
	default:
		return 0, 1
	}
}

// Initials returns up to two upper-case initials from a display name.
// Small avatars show a single letter.
func Initials(name string, size Size) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || r == '.' || r == '_' || r == '-'
	})
	if len(words) == 0 {
		return "?"
	}
	first := []rune(words[0])[0]
	out := string(unicode.ToUpper(first))
	if size == SizeSmall || len(words) == 1 {
		return out
	}
	last := []rune(words[len(words)-1])[0]
	return out + string(unicode.ToUpper(last))
}

// Render draws the avatar fallback for name
func Render(name string, size Size) string {
	v, h := size.padding()
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("136")).
		Padding(v, h).
		Render(Initials(name, size))
}
