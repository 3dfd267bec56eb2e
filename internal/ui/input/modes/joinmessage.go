package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"copticsocial/internal/ui/input/types"
)

// JoinMessageMode collects the optional message sent with a join
// request
type JoinMessageMode struct {
	TextInputMode
	groupID string
}

func NewJoinMessageMode(ti *textinput.Model) *JoinMessageMode {
	return &JoinMessageMode{
		TextInputMode: NewTextInputMode(types.ModeJoinMessage, "join-message", "Message: ", ti),
	}
}

func (m *JoinMessageMode) Enter(ctx types.Context) []types.Action {
	m.TextInputMode.Enter(ctx)
	g := ctx.CurrentGroup()
	if g == nil {
		return nil
	}
	m.groupID = g.ID
	return []types.Action{types.OpenJoinDialogAction{GroupID: g.ID, GroupName: g.Name}}
}

func (m *JoinMessageMode) Exit(ctx types.Context) []types.Action {
	m.TextInputMode.Exit(ctx)
	m.groupID = ""
	return []types.Action{types.CloseDialogAction{}}
}

func (m *JoinMessageMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "enter" {
		text := ""
		if m.textInput != nil {
			text = strings.TrimSpace(m.textInput.Value())
		}
		return []types.Action{
			types.JoinAction{GroupID: m.groupID, Message: text},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
