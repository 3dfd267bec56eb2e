package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	field "copticsocial/internal/ui/components/input"
	"copticsocial/internal/ui/input/modes"
	"copticsocial/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *field.Model // Shared text field for text modes
}

// New creates a handler starting in the given mode
func New(start types.Mode) *Handler {
	f := field.New("Optional message for the group admins", field.VariantSpiritual, field.SizeDefault)

	h := &Handler{
		currentMode: start,
		textInput:   &f,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeLanding] = modes.NewLandingMode()
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode()
	h.modes[types.ModeConfirmLeave] = modes.NewConfirmLeaveMode()
	h.modes[types.ModeJoinMessage] = modes.NewJoinMessageMode(&h.textInput.Model)

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	// If not consumed and we're in text mode, we'll handle it below
	if !consumed && !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	var cmd tea.Cmd
	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		allActions = append(allActions, h.switchMode(changeMode.Mode, ctx)...)
		if h.isTextMode(h.currentMode) {
			cmd = textinput.Blink
		}
	}

	// If we're in a text mode and didn't handle the key, pass it to the field
	if h.isTextMode(h.currentMode) && !consumed {
		*h.textInput, cmd = h.textInput.Update(msg)
	}

	return allActions, cmd
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var out []types.Action
	if cur := h.modes[h.currentMode]; cur != nil {
		out = append(out, cur.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	return out
}

// SwitchMode changes mode from outside a key press, running the exit
// and enter hooks
func (h *Handler) SwitchMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}
	return h.switchMode(mode, ctx)
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// ModeName returns the display name of the current mode
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}

// TextInput returns the shared field while a text mode is active
func (h *Handler) TextInput() *field.Model {
	if h.isTextMode(h.currentMode) {
		return h.textInput
	}
	return nil
}

// PendingLeave returns the group awaiting leave confirmation
func (h *Handler) PendingLeave() string {
	if m, ok := h.modes[types.ModeConfirmLeave].(*modes.ConfirmLeaveMode); ok {
		return m.GroupID()
	}
	return ""
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeJoinMessage
}

// Update handles non-keyboard messages for the text field
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}
