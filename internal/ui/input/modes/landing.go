package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"copticsocial/internal/ui/input/types"
)

// LandingMode handles the welcome page
type LandingMode struct{}

func NewLandingMode() *LandingMode {
	return &LandingMode{}
}

func (m *LandingMode) Name() string {
	return "landing"
}

func (m *LandingMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *LandingMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *LandingMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q", "esc":
		return []types.Action{types.QuitAction{}}, true
	case "enter", "b", " ":
		return []types.Action{
			types.ChangeModeAction{Mode: types.ModeNormal},
			types.EnterGroupsAction{},
		}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
