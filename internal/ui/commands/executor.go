package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"copticsocial/internal/domain"
	"copticsocial/internal/eventbus"
	"copticsocial/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor. A nil logger disables
// logging.
func NewExecutor(state *state.AppState, bus eventbus.EventBus, client GroupsAPI, timeout time.Duration, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		ctx: &CommandContext{
			State:   state,
			Bus:     bus,
			API:     client,
			Timeout: timeout,
			Logger:  logger,
		},
	}
}

// ExecuteLoad creates and executes a load command
func (e *Executor) ExecuteLoad() tea.Cmd {
	return NewLoadGroupsCommand(e.ctx).Execute()
}

// ExecuteJoin creates and executes a join command
func (e *Executor) ExecuteJoin(group domain.Group, message string) tea.Cmd {
	return NewJoinCommand(e.ctx, group, message).Execute()
}

// ExecuteLeave creates and executes a leave command
func (e *Executor) ExecuteLeave(group domain.Group) tea.Cmd {
	return NewLeaveCommand(e.ctx, group).Execute()
}

// ExecuteDetails creates and executes a details command
func (e *Executor) ExecuteDetails(id string) tea.Cmd {
	return NewDetailsCommand(e.ctx, id).Execute()
}

// ExecuteLoadUser creates and executes a user command
func (e *Executor) ExecuteLoadUser() tea.Cmd {
	return NewLoadUserCommand(e.ctx).Execute()
}
