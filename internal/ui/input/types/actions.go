package types

import tea "github.com/charmbracelet/bubbletea"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Dialog actions
type OpenJoinDialogAction struct {
	GroupID   string
	GroupName string
}

func (a OpenJoinDialogAction) Type() string { return "open_join_dialog" }

type ConfirmLeaveAction struct {
	GroupID   string
	GroupName string
}

func (a ConfirmLeaveAction) Type() string { return "confirm_leave" }

type CloseDialogAction struct{}

func (a CloseDialogAction) Type() string { return "close_dialog" }

// ForwardKeyAction hands a key to the component that owns the mode
// (the search bar or the confirm dialog)
type ForwardKeyAction struct {
	Msg tea.KeyMsg
}

func (a ForwardKeyAction) Type() string { return "forward_key" }

// Page actions
type EnterGroupsAction struct{}

func (a EnterGroupsAction) Type() string { return "enter_groups" }

type SwitchTabAction struct{}

func (a SwitchTabAction) Type() string { return "switch_tab" }

type CycleFilterAction struct {
	Filter string // "type" or "privacy"
}

func (a CycleFilterAction) Type() string { return "cycle_filter" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

type ClearFiltersAction struct{}

func (a ClearFiltersAction) Type() string { return "clear_filters" }

type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

// Group actions
type JoinAction struct {
	GroupID string
	Message string
}

func (a JoinAction) Type() string { return "join" }

type LeaveAction struct {
	GroupID string
}

func (a LeaveAction) Type() string { return "leave" }

type ViewDetailsAction struct {
	GroupID string
}

func (a ViewDetailsAction) Type() string { return "view_details" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ToggleMenuAction struct{}

func (a ToggleMenuAction) Type() string { return "toggle_menu" }

type DismissToastsAction struct{}

func (a DismissToastsAction) Type() string { return "dismiss_toasts" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
