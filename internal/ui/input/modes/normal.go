package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"copticsocial/internal/ui/input/types"
)

// NormalMode handles the group list
type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return []types.Action{types.DismissToastsAction{}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab:
		return []types.Action{types.SwitchTabAction{}}, true

	case tea.KeyEnter:
		if g := ctx.CurrentGroup(); g != nil {
			return []types.Action{types.ViewDetailsAction{GroupID: g.ID}}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "g":
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case "G":
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "t":
		return []types.Action{types.CycleFilterAction{Filter: "type"}}, true

	case "p":
		return []types.Action{types.CycleFilterAction{Filter: "privacy"}}, true

	case "s":
		return []types.Action{types.CycleSortAction{}}, true

	case "c":
		if ctx.HasFilters() {
			return []types.Action{types.ClearFiltersAction{}}, true
		}
		return nil, false

	case "r":
		return []types.Action{types.RefreshAction{}}, true

	case "v":
		if g := ctx.CurrentGroup(); g != nil {
			return []types.Action{types.ViewDetailsAction{GroupID: g.ID}}, true
		}
		return nil, false

	case "J":
		g := ctx.CurrentGroup()
		if g == nil || !g.CanJoin() || ctx.Busy(g.ID) {
			return nil, false
		}
		if g.RequireApproval {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeJoinMessage}}, true
		}
		return []types.Action{types.JoinAction{GroupID: g.ID}}, true

	case "L":
		g := ctx.CurrentGroup()
		if g == nil || !g.IsMember() || ctx.Busy(g.ID) {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeConfirmLeave}}, true

	case "m":
		return []types.Action{types.ToggleMenuAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
