package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestTypingEditsValueWhenFocused(t *testing.T) {
	m := New("Optional message", VariantSpiritual, SizeDefault)
	m.Focus()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Hi")})
	assert.Equal(t, "Hi", m.Value())
	assert.Contains(t, m.View(), "Hi")
}

func TestUnfocusedIgnoresKeys(t *testing.T) {
	m := New("", VariantError, SizeLarge)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, "", m.Value())
}
