package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"copticsocial/internal/ui/input/types"
)

// ConfirmLeaveMode asks before leaving the selected group. The dialog
// itself decides on the answer.
type ConfirmLeaveMode struct {
	groupID string
}

func NewConfirmLeaveMode() *ConfirmLeaveMode {
	return &ConfirmLeaveMode{}
}

func (m *ConfirmLeaveMode) Name() string {
	return "confirm-leave"
}

func (m *ConfirmLeaveMode) Enter(ctx types.Context) []types.Action {
	g := ctx.CurrentGroup()
	if g == nil {
		return nil
	}
	m.groupID = g.ID
	return []types.Action{types.ConfirmLeaveAction{GroupID: g.ID, GroupName: g.Name}}
}

func (m *ConfirmLeaveMode) Exit(ctx types.Context) []types.Action {
	m.groupID = ""
	return []types.Action{types.CloseDialogAction{}}
}

// GroupID returns the group awaiting confirmation
func (m *ConfirmLeaveMode) GroupID() string {
	return m.groupID
}

func (m *ConfirmLeaveMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "ctrl+c" {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	return []types.Action{types.ForwardKeyAction{Msg: msg}}, true
}
