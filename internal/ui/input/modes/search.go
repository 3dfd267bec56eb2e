package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"copticsocial/internal/ui/input/types"
)

// SearchMode sends keys to the search bar. Tab returns to the list
// without closing the search.
type SearchMode struct{}

func NewSearchMode() *SearchMode {
	return &SearchMode{}
}

func (m *SearchMode) Name() string {
	return "search"
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "tab":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	return []types.Action{types.ForwardKeyAction{Msg: msg}}, true
}
