package modal

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmedMsg is sent when the user accepts a confirm dialog
type ConfirmedMsg struct {
	ID string
}

// CancelledMsg is sent when the user declines a confirm dialog
type CancelledMsg struct {
	ID string
}

// Confirm is a yes/no dialog built on Model
type Confirm struct {
	Model
}

// NewConfirm creates a closed confirm dialog
func NewConfirm(id, title, body string) Confirm {
	m := New(id)
	m.Title = title
	m.Body = body
	m.Size = SizeSmall
	m.Footer = "[y] confirm   [n] cancel"
	return Confirm{Model: m}
}

func (c *Confirm) answer(ok bool) tea.Cmd {
	c.open = false
	id := c.ID
	if ok {
		return func() tea.Msg { return ConfirmedMsg{ID: id} }
	}
	return func() tea.Msg { return CancelledMsg{ID: id} }
}

// Update handles y/enter to confirm and n/esc or an outside click to
// cancel
func (c Confirm) Update(msg tea.Msg) (Confirm, tea.Cmd) {
	if !c.open {
		return c, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y", "enter":
			return c, c.answer(true)
		case "n", "N", "esc":
			return c, c.answer(false)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !c.Contains(msg.X, msg.Y) {
			return c, c.answer(false)
		}
	}
	return c, nil
}
