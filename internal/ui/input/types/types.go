package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"copticsocial/internal/domain"
)

// Mode represents an input mode
type Mode int

const (
	ModeLanding Mode = iota
	ModeNormal
	ModeSearch
	ModeConfirmLeave
	ModeJoinMessage
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	CurrentGroup() *domain.Group
	HasFilters() bool
	Busy(groupID string) bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
