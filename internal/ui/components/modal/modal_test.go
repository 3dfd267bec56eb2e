package modal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestEscapeClosesOpenModal(t *testing.T) {
	m := New("details")
	m.Title = "Midnight Praises"
	m.Open()

	m, cmd := m.Update(keyMsg("esc"))
	assert.False(t, m.IsOpen())
	require.NotNil(t, cmd)
	assert.Equal(t, ClosedMsg{ID: "details"}, cmd())
}

func TestClosedModalIgnoresInput(t *testing.T) {
	m := New("details")
	m, cmd := m.Update(keyMsg("esc"))
	assert.Nil(t, cmd)
	assert.False(t, m.IsOpen())
}

func TestBackdropClickCloses(t *testing.T) {
	m := New("details")
	m.SetScreen(120, 40)
	m.Title = "Group"
	m.Body = "body"
	m.Open()

	x, y := m.Origin()
	m, cmd := m.Update(click(x+2, y+1))
	assert.True(t, m.IsOpen(), "clicks inside the dialog keep it open")
	assert.Nil(t, cmd)

	m, cmd = m.Update(click(0, 0))
	assert.False(t, m.IsOpen())
	assert.NotNil(t, cmd)
}

func TestPlacement(t *testing.T) {
	m := New("x")
	m.SetScreen(100, 40)
	m.Size = SizeSmall

	x, y := m.Origin()
	assert.Equal(t, (100-40)/2, x)
	assert.Greater(t, y, 2)

	m.Variant = VariantTop
	_, y = m.Origin()
	assert.Equal(t, 2, y)
}

func TestViewIncludesSections(t *testing.T) {
	m := New("x")
	m.SetScreen(100, 40)
	m.Title = "Leave group"
	m.Body = "Are you sure?"
	m.Footer = "footer text"

	view := m.View()
	assert.Contains(t, view, "Leave group")
	assert.Contains(t, view, "Are you sure?")
	assert.Contains(t, view, "footer text")
	assert.Contains(t, view, "esc")

	m.ShowClose = false
	assert.NotContains(t, m.View(), "esc ✕")
}

func TestConfirmAnswers(t *testing.T) {
	tests := []struct {
		key  string
		want tea.Msg
	}{
		{"y", ConfirmedMsg{ID: "leave"}},
		{"enter", ConfirmedMsg{ID: "leave"}},
		{"n", CancelledMsg{ID: "leave"}},
		{"esc", CancelledMsg{ID: "leave"}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c := NewConfirm("leave", "Leave group", "Leave Midnight Praises?")
			c.Open()

			c, cmd := c.Update(keyMsg(tt.key))
			assert.False(t, c.IsOpen())
			require.NotNil(t, cmd)
			assert.Equal(t, tt.want, cmd())
		})
	}
}

func TestConfirmIgnoresOtherKeys(t *testing.T) {
	c := NewConfirm("leave", "Leave group", "")
	c.Open()

	c, cmd := c.Update(keyMsg("x"))
	assert.True(t, c.IsOpen())
	assert.Nil(t, cmd)
}
